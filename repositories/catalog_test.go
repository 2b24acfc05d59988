package repositories

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mycolab-catalog/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Strain{}, &models.Protocol{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	created, err := repo.Create(models.Strain{Name: "Cepa A", Species: "Pleurotus ostreatus"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("Create did not assign an id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Create did not stamp timestamps")
	}
}

func TestCreateThenFindByIDRoundTrip(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	created, err := repo.Create(models.Strain{
		Name:            "Cepa A",
		Species:         "Pleurotus ostreatus",
		Description:     strptr("shimeji branco"),
		Characteristics: models.StringList{"alta produtividade"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "Cepa A" || got.Species != "Pleurotus ostreatus" {
		t.Errorf("FindByID = %q/%q, want Cepa A/Pleurotus ostreatus", got.Name, got.Species)
	}
	if got.Description == nil || *got.Description != "shimeji branco" {
		t.Errorf("Description = %v, want shimeji branco", got.Description)
	}
	if !reflect.DeepEqual(got.Characteristics, models.StringList{"alta produtividade"}) {
		t.Errorf("Characteristics = %v, want [alta produtividade]", got.Characteristics)
	}
}

func TestCreateWithoutListStoresEmptyList(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	created, err := repo.Create(models.Strain{Name: "Cepa B", Species: "Lentinula edodes"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Characteristics == nil || len(got.Characteristics) != 0 {
		t.Errorf("Characteristics = %v, want empty list", got.Characteristics)
	}
}

func TestFindAllNewestFirst(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	names := []string{"primeira", "segunda", "terceira"}
	for _, name := range names {
		if _, err := repo.Create(models.Strain{Name: name, Species: "sp"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll returned %d records, want 3", len(all))
	}
	for i, want := range []string{"terceira", "segunda", "primeira"} {
		if all[i].Name != want {
			t.Errorf("FindAll[%d] = %s, want %s", i, all[i].Name, want)
		}
	}
}

func TestFindAllEmptyReturnsEmptySlice(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if all == nil {
		t.Error("FindAll returned nil, want empty slice")
	}
	if len(all) != 0 {
		t.Errorf("FindAll returned %d records, want 0", len(all))
	}
}

func TestSaveWithNoChangesRefreshesOnlyUpdatedAt(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	created, err := repo.Create(models.Strain{Name: "Cepa A", Species: "Pleurotus ostreatus"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	if _, err := repo.Save(before); err != nil {
		t.Fatalf("Save: %v", err)
	}

	after, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want later than %v", after.UpdatedAt, before.UpdatedAt)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v", before.CreatedAt, after.CreatedAt)
	}
	if after.Name != before.Name || after.Species != before.Species {
		t.Error("Save changed fields that were not modified")
	}
}

func TestFindByIDMissing(t *testing.T) {
	repo := NewCatalogRepository[models.Strain](testDB(t))

	if _, err := repo.FindByID("does-not-exist"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID error = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := NewCatalogRepository[models.Protocol](testDB(t))

	created, err := repo.Create(models.Protocol{Name: "Inoculação", Type: "inoculação"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}
