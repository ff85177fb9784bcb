package repository

import (
	"context"

	"artspace/internal/domain/model"
)

type HomeSettingsRepository interface {
	//唯一の設定行を返す。無ければErrNotFound。
	FindFirst(ctx context.Context) (model.HomeSettings, error)
	Save(ctx context.Context, settings *model.HomeSettings) error
}
