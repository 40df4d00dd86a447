package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Tasks       *TaskRepository
	Reagents    *ReagentRepository
	Experiments *ExperimentRepository
	Buffers     *BufferRepository
	DataPoints  *DataPointRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Tasks:       NewTaskRepository(database),
		Reagents:    NewReagentRepository(database),
		Experiments: NewExperimentRepository(database),
		Buffers:     NewBufferRepository(database),
		DataPoints:  NewDataPointRepository(database),
	}
}
