package db

import (
	kassign "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db"
	khistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
	ktasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db"
)

type TaskDatabase interface {
	Tasks() ktasks.Interface
	Assignments() kassign.Interface
	History() khistory.Interface
	Projects() kproject.Interface
	Close() error
}
