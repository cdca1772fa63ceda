package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/domain/model"
	"gorm.io/gorm"
)

type EndpointRepository struct{ db *gorm.DB }

func NewEndpointRepository(db *gorm.DB) *EndpointRepository { return &EndpointRepository{db: db} }

func endpointToRecord(e *model.Endpoint) (*EndpointRecord, error) {
	cfg, err := json.Marshal(e.Kubernetes.Configuration)
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return &EndpointRecord{
		ID:            e.ID,
		Name:          e.Name,
		URL:           e.URL,
		Kubeconfig:    e.Kubeconfig,
		Configuration: string(cfg),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}

func endpointToModel(r *EndpointRecord) (*model.Endpoint, error) {
	e := &model.Endpoint{
		ID:         r.ID,
		Name:       r.Name,
		URL:        r.URL,
		Kubeconfig: r.Kubeconfig,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Configuration != "" {
		if err := json.Unmarshal([]byte(r.Configuration), &e.Kubernetes.Configuration); err != nil {
			return nil, fmt.Errorf("decode configuration of endpoint %s: %w", r.ID, err)
		}
	}
	return e, nil
}

func (r *EndpointRepository) Create(ctx context.Context, e *model.Endpoint) error {
	if e.ID == "" {
		e.ID = "ep-" + uuid.NewString()
	}
	rec, err := endpointToRecord(e)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *EndpointRepository) Get(ctx context.Context, id string) (*model.Endpoint, error) {
	var rec EndpointRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrEndpointNotFound
		}
		return nil, err
	}
	return endpointToModel(&rec)
}

func (r *EndpointRepository) List(ctx context.Context) ([]*model.Endpoint, error) {
	var recs []EndpointRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Endpoint, 0, len(recs))
	for i := range recs {
		e, err := endpointToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Update replaces all columns, so zero values such as disabled toggles are stored.
func (r *EndpointRepository) Update(ctx context.Context, e *model.Endpoint) error {
	rec, err := endpointToRecord(e)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&EndpointRecord{}).Where("id = ?", rec.ID).Select("*").Omit("created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrEndpointNotFound
	}
	return nil
}

func (r *EndpointRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&EndpointRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrEndpointNotFound
	}
	return nil
}

var _ domain.EndpointRepository = (*EndpointRepository)(nil)
