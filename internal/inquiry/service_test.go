package inquiry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	inquiries map[string]*Inquiry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{inquiries: make(map[string]*Inquiry)}
}

func (f *fakeRepo) Create(_ context.Context, i *Inquiry) error {
	i.ID = uuid.NewString()
	i.CreatedAt = time.Now().UTC()
	stored := *i
	f.inquiries[i.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Inquiry, error) {
	i, ok := f.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *i
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Inquiry, int, error) {
	var out []*Inquiry
	for _, i := range f.inquiries {
		if filter.Unanswered && i.Response != nil {
			continue
		}
		copied := *i
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) SetResponse(_ context.Context, id, response string) error {
	i, ok := f.inquiries[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	i.Response = &response
	i.RespondedAt = &now
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.inquiries[id]; !ok {
		return ErrNotFound
	}
	delete(f.inquiries, id)
	return nil
}

func TestCreateInquiry(t *testing.T) {
	svc := NewService(newFakeRepo())

	i, err := svc.Create(context.Background(), CreateRequest{
		Name:    " Amy ",
		Email:   " Amy@Example.COM ",
		Message: "Do you do bridal packages?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, i.ID)
	assert.Equal(t, "Amy", i.Name)
	assert.Equal(t, "amy@example.com", i.Email)
	assert.Nil(t, i.Response)
	assert.Nil(t, i.RespondedAt)
}

func TestCreateInquiryValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Email: "amy@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Amy", Message: "hi"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Amy", Email: "amy@example.com", Message: "   "})
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestRespondToInquiry(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	i, err := svc.Create(ctx, CreateRequest{Name: "Amy", Email: "amy@example.com", Message: "Bridal packages?"})
	require.NoError(t, err)

	answered, err := svc.Respond(ctx, i.ID, "Yes, from June onwards.")
	require.NoError(t, err)
	require.NotNil(t, answered.Response)
	assert.Equal(t, "Yes, from June onwards.", *answered.Response)
	assert.NotNil(t, answered.RespondedAt)

	_, err = svc.Respond(ctx, i.ID, "  ")
	assert.ErrorIs(t, err, ErrMessageRequired)

	_, err = svc.Respond(ctx, uuid.NewString(), "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListInquiriesUnanswered(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateRequest{Name: "Amy", Email: "amy@example.com", Message: "one"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Name: "Bea", Email: "bea@example.com", Message: "two"})
	require.NoError(t, err)

	_, err = svc.Respond(ctx, first.ID, "answered")
	require.NoError(t, err)

	open, total, err := svc.List(ctx, Filter{Unanswered: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, open, 1)
	assert.Equal(t, "Bea", open[0].Name)
}

func TestDeleteInquiry(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	i, err := svc.Create(ctx, CreateRequest{Name: "Amy", Email: "amy@example.com", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, i.ID))
	assert.ErrorIs(t, svc.Delete(ctx, i.ID), ErrNotFound)
}
