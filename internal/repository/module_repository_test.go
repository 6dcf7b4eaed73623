package repository

import (
	"errors"
	"sync"
	"testing"

	"learning_progress_backend/internal/model"
	"learning_progress_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll_NoFilter(t *testing.T) {
	repo := NewModuleRepository()

	modules := repo.FindAll("")
	require.Len(t, modules, 8)
	assert.Equal(t, SeedModules(), modules)
}

func TestFindAll_ByCategory(t *testing.T) {
	repo := NewModuleRepository()

	wantIDs := map[model.ModuleCategory][]string{
		model.CategoryAI:             {"1", "2"},
		model.CategorySustainability: {"3", "4", "5"},
		model.CategoryDigitalSkills:  {"6", "7", "8"},
	}

	for category, ids := range wantIDs {
		t.Run(string(category), func(t *testing.T) {
			modules := repo.FindAll(string(category))
			require.Len(t, modules, len(ids))
			for i, m := range modules {
				assert.Equal(t, category, m.Category)
				assert.Equal(t, ids[i], m.ID)
			}
		})
	}
}

func TestFindAll_CategoriesPartitionCatalog(t *testing.T) {
	repo := NewModuleRepository()

	var union []model.LearningModule
	for _, c := range model.ModuleCategories() {
		union = append(union, repo.FindAll(string(c))...)
	}

	assert.ElementsMatch(t, repo.FindAll(""), union)
}

func TestFindAll_UnrecognizedCategory(t *testing.T) {
	repo := NewModuleRepository()

	tests := []string{"InvalidCategory", "ai", "AI ", "Digital Skills", "digitalskills", "null"}
	for _, category := range tests {
		t.Run(category, func(t *testing.T) {
			modules := repo.FindAll(category)
			assert.NotNil(t, modules)
			assert.Empty(t, modules)
		})
	}
}

func TestFindAll_ReturnsCopies(t *testing.T) {
	repo := NewModuleRepository()

	first := repo.FindAll("")
	second := repo.FindAll("")
	require.Equal(t, first, second)
	assert.NotSame(t, &first[0], &second[0])

	first[0].Completed = true
	first[0].Title = "changed"

	m, ok := repo.FindByID(first[0].ID)
	require.True(t, ok)
	assert.False(t, m.Completed)
	assert.Equal(t, "Introduction to Machine Learning", m.Title)
}

func TestFindByID(t *testing.T) {
	repo := NewModuleRepository()

	m, ok := repo.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "1", m.ID)
	assert.Equal(t, "Introduction to Machine Learning", m.Title)

	for _, id := range []string{"5", "8"} {
		m, ok := repo.FindByID(id)
		require.True(t, ok)
		assert.Equal(t, id, m.ID)
	}

	_, ok = repo.FindByID("non-existent-id")
	assert.False(t, ok)

	_, ok = repo.FindByID("")
	assert.False(t, ok)
}

func TestUpdateCompletion(t *testing.T) {
	repo := NewModuleRepository()

	before, ok := repo.FindByID("1")
	require.True(t, ok)

	updated, err := repo.UpdateCompletion("1", true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.Title, updated.Title)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.EstimatedMinutes, updated.EstimatedMinutes)

	fetched, ok := repo.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, updated, fetched)

	updated.Completed = false
	fetched, _ = repo.FindByID("1")
	assert.True(t, fetched.Completed)

	updated, err = repo.UpdateCompletion("1", false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestUpdateCompletion_NotFound(t *testing.T) {
	repo := NewModuleRepository()

	_, err := repo.UpdateCompletion("invalid", true)
	require.Error(t, err)
	assert.EqualError(t, err, `Module with ID "invalid" not found`)
	assert.True(t, errors.Is(err, util.ErrModuleNotFound))

	var nf *util.ModuleNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "invalid", nf.ID)

	assert.Equal(t, SeedModules(), repo.FindAll(""))
}

func TestReset(t *testing.T) {
	repo := NewModuleRepository()

	_, err := repo.UpdateCompletion("1", true)
	require.NoError(t, err)
	_, err = repo.UpdateCompletion("2", true)
	require.NoError(t, err)

	repo.Reset()

	for _, m := range repo.FindAll("") {
		assert.False(t, m.Completed, "module %s", m.ID)
	}
	assert.Equal(t, 8, repo.Count())
}

func TestNewModuleRepositoryWithSeed(t *testing.T) {
	seed := func() []model.LearningModule {
		return []model.LearningModule{
			{ID: "a", Title: "A", Category: model.CategoryAI, EstimatedMinutes: 1, Completed: true},
		}
	}
	repo := NewModuleRepositoryWithSeed(seed)

	_, err := repo.UpdateCompletion("a", false)
	require.NoError(t, err)

	repo.Reset()
	m, ok := repo.FindByID("a")
	require.True(t, ok)
	assert.True(t, m.Completed)
}

func TestUpdateCompletion_Concurrent(t *testing.T) {
	repo := NewModuleRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v bool) {
			defer wg.Done()
			_, _ = repo.UpdateCompletion("3", v)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			_ = repo.FindAll("Sustainability")
		}()
	}
	wg.Wait()

	m, ok := repo.FindByID("3")
	require.True(t, ok)
	assert.Equal(t, "Sustainable Energy Solutions", m.Title)
	assert.Equal(t, 30, m.EstimatedMinutes)
}
