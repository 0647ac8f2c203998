package points

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBLedgerRepository_Insert(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	quizID := int64(7)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		wantErrs  bool
		wantID    int64
	}{
		{
			name: "inserts event and captures id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO activity_events").
					WithArgs(int64(3), ActivityQuizCompletion, 15, &quizID, "3:quiz_completion:7", now).
					WillReturnResult(sqlmock.NewResult(41, 1))
			},
			wantID: 41,
		},
		{
			name: "duplicate dedupe key maps to ErrDuplicateEvent",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO activity_events").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '3:quiz_completion:7' for key 'uq_activity_events_dedupe_key'"})
			},
			wantErr: ErrDuplicateEvent,
		},
		{
			name: "other db error is not a duplicate",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO activity_events").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErrs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			repo := NewDBLedgerRepository(sqlxDB)
			tt.setupMock(mock)

			event := &ActivityEvent{
				StudentID:       3,
				ActivityType:    ActivityQuizCompletion,
				Points:          15,
				RelatedEntityID: &quizID,
				DedupeKey:       "3:quiz_completion:7",
				OccurredAt:      now,
			}
			err = repo.Insert(context.Background(), event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantErrs {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrDuplicateEvent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, event.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBLedgerRepository_TotalsBetween(t *testing.T) {
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []StudentTotal
		wantErr   bool
	}{
		{
			name: "returns per-student sums",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"student_id", "total_points"}).
					AddRow(3, 45).
					AddRow(5, 25)
				mock.ExpectQuery("SELECT student_id, SUM\\(points\\) AS total_points FROM activity_events WHERE occurred_at >= \\? AND occurred_at < \\? GROUP BY student_id").
					WithArgs(from, to).
					WillReturnRows(rows)
			},
			want: []StudentTotal{
				{StudentID: 3, TotalPoints: 45},
				{StudentID: 5, TotalPoints: 25},
			},
		},
		{
			name: "empty window",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT student_id, SUM\\(points\\) AS total_points FROM activity_events").
					WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"student_id", "total_points"}))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT student_id, SUM\\(points\\) AS total_points FROM activity_events").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			repo := NewDBLedgerRepository(sqlxDB)
			tt.setupMock(mock)

			got, err := repo.TotalsBetween(context.Background(), from, to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBLedgerRepository_CountEventsBetween(t *testing.T) {
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []StudentEventCount
		wantErr   bool
	}{
		{
			name: "returns per-student counts excluding bonuses",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"student_id", "events"}).
					AddRow(3, 6).
					AddRow(5, 2)
				mock.ExpectQuery("SELECT student_id, COUNT\\(\\*\\) AS events FROM activity_events WHERE occurred_at >= \\? AND occurred_at < \\? AND activity_type NOT IN \\(\\?, \\?\\) GROUP BY student_id").
					WithArgs(from, to, ActivityWeeklyBonus, ActivityMonthlyBonus).
					WillReturnRows(rows)
			},
			want: []StudentEventCount{
				{StudentID: 3, Events: 6},
				{StudentID: 5, Events: 2},
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT student_id, COUNT\\(\\*\\) AS events FROM activity_events").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			repo := NewDBLedgerRepository(sqlxDB)
			tt.setupMock(mock)

			got, err := repo.CountEventsBetween(context.Background(), from, to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
