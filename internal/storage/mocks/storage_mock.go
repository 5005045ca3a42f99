// Package mocks holds testify/mock doubles for the storage layer, so the
// roster and the console handlers can be tested without a database and
// with failures on demand.
package mocks

import (
	"github.com/aanand-mishra/students-roster/internal/types"
	"github.com/stretchr/testify/mock"
)

// StorageMock is a testify/mock for storage.Storage.
type StorageMock struct{ mock.Mock }

func (m *StorageMock) CreateStudent(student types.Student) error {
	return m.Called(student).Error(0)
}

func (m *StorageMock) GetStudentByID(id string) (types.Student, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(types.Student), args.Error(1)
	}
	return types.Student{}, args.Error(1)
}

func (m *StorageMock) GetStudents() ([]types.Student, error) {
	args := m.Called()
	var items []types.Student
	if v := args.Get(0); v != nil {
		items = v.([]types.Student)
	}
	return items, args.Error(1)
}

func (m *StorageMock) DeleteStudentByID(id string) error {
	return m.Called(id).Error(0)
}

func (m *StorageMock) Close() error {
	return m.Called().Error(0)
}
