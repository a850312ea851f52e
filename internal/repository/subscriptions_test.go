package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/01moynul/studybuddy-golang/internal/models"
	mock_repository "github.com/01moynul/studybuddy-golang/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionsR_Subscription(t *testing.T) {
	t.Parallel()

	active := models.Subscription{
		ID:       "sub-1",
		UserID:   "user-1",
		PlanType: strPtr("monthly"),
		Status:   strPtr("active"),
	}

	tests := []struct {
		name        string
		f           func(*mock_repository.MockQueryI)
		wantPresent bool
		want        models.Subscription
		wantErr     bool
	}{
		{
			name: "latest row",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1").
					SetArg(1, active).
					Return(nil)
			},
			wantPresent: true,
			want:        active,
		},
		{
			name: "never subscribed",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
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
			subscriptionsR := NewSubscriptionsRepository(db)

			got, err := subscriptionsR.Subscription(context.Background(), "user-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.Present())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantPresent, got.Present())
			if tt.wantPresent {
				sub, _ := got.Get()
				assert.Equal(t, tt.want, sub)
			}
		})
	}
}
