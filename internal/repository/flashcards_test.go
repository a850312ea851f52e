package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/01moynul/studybuddy-golang/internal/models"
	mock_repository "github.com/01moynul/studybuddy-golang/internal/repository/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFlashcardsR_CreateFlashcards(t *testing.T) {
	t.Parallel()

	cards := []models.Flashcard{
		{ID: "f1", UserID: "user-1", Question: "q1", Answer: "a1"},
		{ID: "f2", UserID: "user-1", Question: "q2", Answer: "a2"},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "one insert per card",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
			},
		},
		{
			name: "stops at first failure",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error")).Times(1)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mock_repository.NewMockQueryI(ctrl)
			tt.f(db)

			err := NewFlashcardsRepository(db).CreateFlashcards(context.Background(), cards)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFlashcardsR_Flashcard_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "f1", "user-1").Return(sql.ErrNoRows)

	_, err := NewFlashcardsRepository(db).Flashcard(context.Background(), "user-1", "f1")
	require.ErrorIs(t, err, ErrNotFound)
}
