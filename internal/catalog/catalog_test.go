package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/fiufit/trainings/internal/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func strPtr(s string) *string {
	return &s
}

func TestCatalog_ResolveType_CachesHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	c := catalog.NewCatalog(repoMock)

	repoMock.EXPECT().
		FindType(gomock.Any(), "Cardio").
		Return(&catalog.TrainingType{ID: 1, Name: "Cardio"}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		tt, err := c.ResolveType(context.Background(), "Cardio")
		require.NoError(t, err)
		assert.Equal(t, catalog.TrainingType{ID: 1, Name: "Cardio"}, tt)
	}
}

func TestCatalog_ResolveType_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	c := catalog.NewCatalog(repoMock)

	// misses are not cached
	repoMock.EXPECT().
		FindType(gomock.Any(), "finger").
		Return(nil, catalog.ErrNotFound).
		Times(2)

	for i := 0; i < 2; i++ {
		_, err := c.ResolveType(context.Background(), "finger")
		var nfErr *catalog.NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, catalog.KindType, nfErr.Kind)
		assert.Equal(t, "finger", nfErr.Name)
		assert.Equal(t, "Type finger not found.", err.Error())
	}
}

func TestCatalog_ResolveDifficulty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	c := catalog.NewCatalog(repoMock)

	repoMock.EXPECT().
		FindDifficulty(gomock.Any(), "Hard").
		Return(&catalog.Difficulty{ID: 3, Name: "Hard"}, nil)
	repoMock.EXPECT().
		FindDifficulty(gomock.Any(), "Impossible").
		Return(nil, catalog.ErrNotFound)

	d, err := c.ResolveDifficulty(context.Background(), "Hard")
	require.NoError(t, err)
	assert.Equal(t, 3, d.ID)

	_, err = c.ResolveDifficulty(context.Background(), "Impossible")
	assert.EqualError(t, err, "Difficulty Impossible not found.")
}

func TestCatalog_ResolveExercise_UnitIsPartOfTheKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	c := catalog.NewCatalog(repoMock)

	cardio := catalog.TrainingType{ID: 1, Name: "Cardio"}
	walkMetre := &catalog.ExerciseDefinition{ID: 1, Name: "Walk", Type: cardio, Unit: strPtr("metre")}
	walkSecond := &catalog.ExerciseDefinition{ID: 2, Name: "Walk", Type: cardio, Unit: strPtr("second")}

	repoMock.EXPECT().FindExercise(gomock.Any(), "Walk", strPtr("metre")).Return(walkMetre, nil).Times(1)
	repoMock.EXPECT().FindExercise(gomock.Any(), "Walk", strPtr("second")).Return(walkSecond, nil).Times(1)
	repoMock.EXPECT().FindExercise(gomock.Any(), "Walk", nil).Return(nil, catalog.ErrNotFound).Times(1)

	ex, err := c.ResolveExercise(context.Background(), "Walk", strPtr("metre"))
	require.NoError(t, err)
	assert.Equal(t, 1, ex.ID)
	ex, err = c.ResolveExercise(context.Background(), "Walk", strPtr("second"))
	require.NoError(t, err)
	assert.Equal(t, 2, ex.ID)
	// cached
	ex, err = c.ResolveExercise(context.Background(), "Walk", strPtr("metre"))
	require.NoError(t, err)
	assert.Equal(t, 1, ex.ID)
	assert.Equal(t, "Cardio", ex.Type.Name)

	_, err = c.ResolveExercise(context.Background(), "Walk", nil)
	assert.EqualError(t, err, "Exercise Walk not found.")
}

func TestCatalog_ResolveExercise_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	c := catalog.NewCatalog(repoMock)

	repoMock.EXPECT().
		FindExercise(gomock.Any(), "Plank", nil).
		Return(nil, errors.New("conn reset"))

	_, err := c.ResolveExercise(context.Background(), "Plank", nil)
	require.Error(t, err)
	var nfErr *catalog.NotFoundError
	assert.False(t, errors.As(err, &nfErr))
	assert.Contains(t, err.Error(), "conn reset")
}

func TestCatalog_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockcatalogRepo(ctrl)
	c := catalog.NewCatalog(repoMock)

	repoMock.EXPECT().Seed(gomock.Any()).Return(nil)
	require.NoError(t, c.Seed(context.Background()))

	repoMock.EXPECT().Seed(gomock.Any()).Return(errors.New("db down"))
	assert.EqualError(t, c.Seed(context.Background()), "seed catalog: db down")
}

func TestNotFoundError_WithUnit(t *testing.T) {
	err := &catalog.NotFoundError{Kind: catalog.KindExercise, Name: "Swim", Unit: strPtr("metre")}
	assert.Equal(t, "Exercise Swim (metre) not found.", err.Error())
}
