package offering

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	offerings map[string]*Offering
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{offerings: make(map[string]*Offering)}
}

func (f *fakeRepo) Create(_ context.Context, o *Offering) error {
	o.ID = uuid.NewString()
	stored := *o
	f.offerings[o.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Offering, error) {
	o, ok := f.offerings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Offering, int, error) {
	var out []*Offering
	for _, o := range f.offerings {
		if filter.Category != "" && o.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !o.IsActive {
			continue
		}
		copied := *o
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, o *Offering) error {
	if _, ok := f.offerings[o.ID]; !ok {
		return ErrNotFound
	}
	stored := *o
	f.offerings[o.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.offerings[id]; !ok {
		return ErrNotFound
	}
	delete(f.offerings, id)
	return nil
}

func TestCreateOffering(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateRequest{
		Name:        "  Haircut ",
		Description: "Wash, cut and style",
		Price:       45,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "Haircut", o.Name)
	assert.Equal(t, 60, o.DurationMinutes, "duration defaults to an hour")
	assert.Equal(t, "General", o.Category, "category defaults to General")
	assert.True(t, o.IsActive)
	require.NotNil(t, o.Description)
	assert.Equal(t, "Wash, cut and style", *o.Description)
}

func TestCreateOfferingValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "  ", Price: 10})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Haircut", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Create(ctx, CreateRequest{Name: "Haircut", Price: 10, DurationMinutes: -30})
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestUpdateOffering(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateRequest{Name: "Haircut", Price: 45})
	require.NoError(t, err)

	newPrice := 55.0
	inactive := false
	updated, err := svc.Update(ctx, o.ID, UpdateRequest{Price: &newPrice, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Haircut", updated.Name, "untouched fields survive")

	empty := " "
	_, err = svc.Update(ctx, o.ID, UpdateRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrNameRequired)

	negative := -5.0
	_, err = svc.Update(ctx, o.ID, UpdateRequest{Price: &negative})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Update(ctx, uuid.NewString(), UpdateRequest{Price: &newPrice})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOfferings(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Haircut", Price: 45, Category: "Hair"})
	require.NoError(t, err)
	o2, err := svc.Create(ctx, CreateRequest{Name: "Facial", Price: 60, Category: "Skin"})
	require.NoError(t, err)

	all, total, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	hair, _, err := svc.List(ctx, Filter{Category: "Hair"})
	require.NoError(t, err)
	require.Len(t, hair, 1)
	assert.Equal(t, "Haircut", hair[0].Name)

	inactive := false
	_, err = svc.Update(ctx, o2.ID, UpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	active, _, err := svc.List(ctx, Filter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Haircut", active[0].Name)
}

func TestDeleteOffering(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateRequest{Name: "Haircut", Price: 45})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, o.ID))
	assert.ErrorIs(t, svc.Delete(ctx, o.ID), ErrNotFound)
}
