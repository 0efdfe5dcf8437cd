package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		service := NewTeamService(mockTeamRepo)

		team := &domain.Team{Number: 12, StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)}
		mockTeamRepo.On("Create", mock.Anything, team).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Team).ID = 1
		}).Return(nil).Once()

		result, err := service.CreateTeam(context.Background(), team)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: номер уже занят", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		service := NewTeamService(mockTeamRepo)

		mockTeamRepo.On("Create", mock.Anything, mock.Anything).
			Return(domain.NewAlreadyExistsError("team with number 12 already exists")).Once()

		result, err := service.CreateTeam(context.Background(), &domain.Team{Number: 12, StartDate: time.Now()})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка валидации", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		service := NewTeamService(mockTeamRepo)

		_, err := service.CreateTeam(context.Background(), &domain.Team{Number: 0, StartDate: time.Now()})
		assert.True(t, errors.Is(err, domain.ErrValidation))

		_, err = service.CreateTeam(context.Background(), &domain.Team{Number: 3})
		assert.True(t, errors.Is(err, domain.ErrValidation))

		mockTeamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	mockTeamRepo := new(MockTeamRepository)
	service := NewTeamService(mockTeamRepo)

	mockTeamRepo.On("Delete", mock.Anything, int64(1)).
		Return(domain.NewRestrictedError("team with id 1 still has members")).Once()

	err := service.DeleteTeam(context.Background(), 1)

	assert.True(t, errors.Is(err, domain.ErrRestricted))
	mockTeamRepo.AssertExpectations(t)
}
