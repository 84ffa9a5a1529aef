package position

import (
	"context"
	"errors"
	"testing"

	positionerrors "github.com/RahimovIlhom/personnel-management/internal/position/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	byID        map[string]*Position
	departments map[string]bool
	createErr   error
	lastSaved   *Position
}

func newFakeRepo(departmentIDs ...string) *fakeRepo {
	f := &fakeRepo{
		byID:        map[string]*Position{},
		departments: map[string]bool{},
	}
	for _, id := range departmentIDs {
		f.departments[id] = true
	}
	return f
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, p *Position) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.ID.String()] = p
	f.lastSaved = p
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context, departmentID string) ([]Position, error) {
	out := make([]Position, 0, len(f.byID))
	for _, p := range f.byID {
		if departmentID != "" && p.DepartmentID.String() != departmentID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Position, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeRepo) DepartmentExists(ctx context.Context, id string) (bool, error) {
	return f.departments[id], nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Position) error {
	f.byID[p.ID.String()] = p
	f.lastSaved = p
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func TestPositionService_Create(t *testing.T) {
	ctx := context.Background()
	deptID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		repo := newFakeRepo(deptID)
		svc := NewService(nil, repo)

		resp, err := svc.Create(ctx, CreatePositionRequest{
			DepartmentID: deptID,
			Name:         "Senior Engineer",
			NumberOfJobs: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "Senior Engineer", resp.Name)
		assert.Equal(t, 3, resp.NumberOfJobs)
		assert.Equal(t, deptID, resp.DepartmentID)
	})

	t.Run("unknown department", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(nil, repo)

		_, err := svc.Create(ctx, CreatePositionRequest{
			DepartmentID: uuid.NewString(),
			Name:         "Senior Engineer",
			NumberOfJobs: 1,
		})
		assert.ErrorIs(t, err, positionerrors.ErrDepartmentNotFound)
	})

	t.Run("duplicate name in department", func(t *testing.T) {
		repo := newFakeRepo(deptID)
		repo.createErr = errors.New(`duplicate key value violates unique constraint "uq_position_department_name"`)
		svc := NewService(nil, repo)

		_, err := svc.Create(ctx, CreatePositionRequest{
			DepartmentID: deptID,
			Name:         "Senior Engineer",
			NumberOfJobs: 1,
		})
		assert.ErrorIs(t, err, positionerrors.ErrPositionAlreadyExists)
	})
}

func TestPositionService_GetAll(t *testing.T) {
	ctx := context.Background()
	deptA := uuid.New()
	deptB := uuid.New()

	repo := newFakeRepo(deptA.String(), deptB.String())
	svc := NewService(nil, repo)

	for i, dept := range []uuid.UUID{deptA, deptA, deptB} {
		p := &Position{ID: uuid.New(), DepartmentID: dept, Name: "P", NumberOfJobs: i + 1}
		repo.byID[p.ID.String()] = p
	}

	all, err := svc.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := svc.GetAll(ctx, deptA.String())
	require.NoError(t, err)
	assert.Len(t, scoped, 2)

	_, err = svc.GetAll(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, positionerrors.ErrDepartmentNotFound)
}

func TestPositionService_Update(t *testing.T) {
	ctx := context.Background()
	deptID := uuid.New()
	repo := newFakeRepo(deptID.String())
	svc := NewService(nil, repo)

	p := &Position{ID: uuid.New(), DepartmentID: deptID, Name: "Junior", NumberOfJobs: 1}
	repo.byID[p.ID.String()] = p

	resp, err := svc.Update(ctx, p.ID.String(), UpdatePositionRequest{
		DepartmentID: deptID.String(),
		Name:         "Middle",
		NumberOfJobs: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Middle", resp.Name)
	assert.Equal(t, 2, resp.NumberOfJobs)

	_, err = svc.Update(ctx, uuid.NewString(), UpdatePositionRequest{
		DepartmentID: deptID.String(),
		Name:         "Middle",
		NumberOfJobs: 2,
	})
	assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
}
