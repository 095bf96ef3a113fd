package services

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"medal-service/internal/geo"
	"medal-service/internal/models"
)

// In-memory repositories mirroring the persistence-layer contract: unique
// indexes surface gorm.ErrDuplicatedKey, missing rows gorm.ErrRecordNotFound.

type fakeMedalRepo struct {
	nextNo int64
	medals map[int64]*models.Medal
}

func newFakeMedalRepo() *fakeMedalRepo {
	return &fakeMedalRepo{nextNo: 1, medals: map[int64]*models.Medal{}}
}

func (f *fakeMedalRepo) Create(_ context.Context, medal *models.Medal) error {
	medal.MedalNo = f.nextNo
	f.nextNo++
	medal.CreatedAt = time.Now()
	medal.UpdatedAt = medal.CreatedAt
	cp := *medal
	f.medals[medal.MedalNo] = &cp
	return nil
}

func (f *fakeMedalRepo) FindByNo(_ context.Context, medalNo int64) (*models.Medal, error) {
	m, ok := f.medals[medalNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMedalRepo) FindWithinBounds(_ context.Context, b geo.Bounds, limit int) ([]models.Medal, error) {
	var out []models.Medal
	for _, m := range f.medals {
		if m.IsDeleted {
			continue
		}
		if m.Latitude >= b.MinLat && m.Latitude <= b.MaxLat &&
			m.Longitude >= b.MinLon && m.Longitude <= b.MaxLon {
			out = append(out, *m)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMedalRepo) ListByUser(_ context.Context, userID string) ([]models.Medal, error) {
	var out []models.Medal
	for _, m := range f.medals {
		if m.UserID == userID && !m.IsDeleted {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMedalRepo) ListNosByUser(_ context.Context, userID string) ([]int64, error) {
	var nos []int64
	for _, m := range f.medals {
		if m.UserID == userID {
			nos = append(nos, m.MedalNo)
		}
	}
	return nos, nil
}

func (f *fakeMedalRepo) Delete(_ context.Context, medalNo int64) error {
	delete(f.medals, medalNo)
	return nil
}

func (f *fakeMedalRepo) Invalidate(_ context.Context, medalNo int64, at time.Time) error {
	if m, ok := f.medals[medalNo]; ok {
		m.IsDeleted = true
		m.DeletedAt = &at
	}
	return nil
}

func (f *fakeMedalRepo) InvalidateAllByUser(_ context.Context, userID string, at time.Time) error {
	for _, m := range f.medals {
		if m.UserID == userID {
			m.IsDeleted = true
			m.DeletedAt = &at
		}
	}
	return nil
}

func testMedal(owner string, lat, lon float64) *models.Medal {
	return &models.Medal{UserID: owner, Latitude: lat, Longitude: lon}
}

type reportKey struct {
	medalNo int64
	userID  string
}

type fakeReportRepo struct {
	nextID  int64
	reports map[reportKey]*models.MedalReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{nextID: 1, reports: map[reportKey]*models.MedalReport{}}
}

func (f *fakeReportRepo) Create(_ context.Context, report *models.MedalReport) error {
	key := reportKey{report.MedalNo, report.ReporterUserID}
	if _, ok := f.reports[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	report.ID = f.nextID
	f.nextID++
	report.CreatedAt = time.Now()
	cp := *report
	f.reports[key] = &cp
	return nil
}

func (f *fakeReportRepo) CountByMedal(_ context.Context, medalNo int64) (int64, error) {
	var count int64
	for key := range f.reports {
		if key.medalNo == medalNo {
			count++
		}
	}
	return count, nil
}

func (f *fakeReportRepo) CountByMedals(_ context.Context, medalNos []int64) (int64, error) {
	var count int64
	for _, no := range medalNos {
		n, _ := f.CountByMedal(context.Background(), no)
		count += n
	}
	return count, nil
}

func (f *fakeReportRepo) Exists(_ context.Context, medalNo int64, userID string) (bool, error) {
	_, ok := f.reports[reportKey{medalNo, userID}]
	return ok, nil
}

type collectionKey struct {
	userID  string
	medalNo int64
}

type fakeCollectionRepo struct {
	nextID      int64
	collections map[collectionKey]*models.MedalCollection
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{nextID: 1, collections: map[collectionKey]*models.MedalCollection{}}
}

func (f *fakeCollectionRepo) Create(_ context.Context, collection *models.MedalCollection) error {
	key := collectionKey{collection.UserID, collection.MedalNo}
	if _, ok := f.collections[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	collection.CollectionID = f.nextID
	f.nextID++
	collection.CollectedAt = time.Now()
	cp := *collection
	f.collections[key] = &cp
	return nil
}

func (f *fakeCollectionRepo) DeleteByPair(_ context.Context, userID string, medalNo int64) error {
	delete(f.collections, collectionKey{userID, medalNo})
	return nil
}

func (f *fakeCollectionRepo) ListByUser(_ context.Context, userID string) ([]models.MedalCollection, error) {
	var out []models.MedalCollection
	for key, c := range f.collections {
		if key.userID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CollectedAt.After(out[j].CollectedAt) })
	return out, nil
}

func (f *fakeCollectionRepo) Exists(_ context.Context, userID string, medalNo int64) (bool, error) {
	_, ok := f.collections[collectionKey{userID, medalNo}]
	return ok, nil
}
