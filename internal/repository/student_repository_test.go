package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubot/edubot-api/internal/models"
)

func TestStudentRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO estudiantes")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	student := &models.Student{Name: "Luis", Program: "Sistemas", Active: true}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.NotEmpty(t, student.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nombre", "programa", "creditos_aprobados", "activo", "created_at"}).
		AddRow("s1", "Luis", "Sistemas", 30, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, programa, creditos_aprobados, activo, created_at FROM estudiantes WHERE id = $1")).
		WithArgs("s1").
		WillReturnRows(rows)

	student, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 30, student.CreditsApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepositoryMarkRead(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notificaciones SET leido = TRUE WHERE id = $1")).
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkRead(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "estudiante_id", "mensaje", "leido", "created_at"}).
		AddRow("n1", "s1", "Inscripción realizada en MAT101 - Cálculo", false, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM notificaciones")).
		WithArgs("s1").
		WillReturnRows(rows)

	notifications, err := repo.ListByStudent(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)
	require.NoError(t, mock.ExpectationsWereMet())
}
