package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
)

func TestClassifyDelivery(t *testing.T) {
	// 2024-03-04 is a Monday.
	monday := day(2024, time.March, 4)

	cases := []struct {
		name     string
		category types.DeliveryCategory
		date     time.Time
		want     types.DeliveryStatus
	}{
		{"horti monday on time", types.CategoryHorti, monday, types.DeliveryOnTime},
		{"horti tuesday on time", types.CategoryHorti, monday.AddDate(0, 0, 1), types.DeliveryOnTime},
		{"horti wednesday late", types.CategoryHorti, monday.AddDate(0, 0, 2), types.DeliveryLate},
		{"horti sunday late", types.CategoryHorti, monday.AddDate(0, 0, 6), types.DeliveryLate},
		{"bread monday on time", types.CategoryBread, monday, types.DeliveryOnTime},
		{"bread friday late", types.CategoryBread, monday.AddDate(0, 0, 4), types.DeliveryLate},
		{"perishables monday early", types.CategoryPerishable, monday, types.DeliveryEarly},
		{"perishables tuesday early", types.CategoryPerishable, monday.AddDate(0, 0, 1), types.DeliveryEarly},
		{"perishables wednesday on time", types.CategoryPerishable, monday.AddDate(0, 0, 2), types.DeliveryOnTime},
		{"perishables thursday on time", types.CategoryPerishable, monday.AddDate(0, 0, 3), types.DeliveryOnTime},
		{"perishables friday late", types.CategoryPerishable, monday.AddDate(0, 0, 4), types.DeliveryLate},
		{"base saturday late", types.CategoryDryBase, monday.AddDate(0, 0, 5), types.DeliveryLate},
		{"cleaning sunday late", types.CategoryCleaning, monday.AddDate(0, 0, 6), types.DeliveryLate},
		{"cleaning thursday on time", types.CategoryCleaning, monday.AddDate(0, 0, 3), types.DeliveryOnTime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ClassifyDelivery(c.date, c.category)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if got != c.want {
				t.Fatalf("status: want=%s got=%s", c.want, got)
			}
		})
	}
}

func TestClassifyDelivery_UnknownCategory(t *testing.T) {
	_, err := ClassifyDelivery(day(2024, time.March, 4), "FROZEN")
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("unknown category: want ErrInvalidArgument got=%v", err)
	}
	_, err = ClassifyDelivery(time.Time{}, types.CategoryHorti)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("zero date: want ErrInvalidArgument got=%v", err)
	}
}

func TestRecordReceipt(t *testing.T) {
	log := testLogger(t)
	schoolID := uuid.New()
	schoolRepo := &fakeSchoolRepo{rows: map[uuid.UUID]*types.School{
		schoolID: {ID: schoolID, Name: "EM Central", Active: true},
	}}
	receiptRepo := &fakeReceiptRepo{}
	svc := NewDeliveryService(nil, log, receiptRepo, schoolRepo)

	// Wednesday delivery of a base item is on time.
	got, err := svc.RecordReceipt(context.Background(), nil, schoolID, day(2024, time.March, 6), types.CategoryDryBase, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got.Status != types.DeliveryOnTime {
		t.Fatalf("status: want=%s got=%s", types.DeliveryOnTime, got.Status)
	}
	if len(receiptRepo.rows) != 1 {
		t.Fatalf("persisted receipts: want=1 got=%d", len(receiptRepo.rows))
	}

	_, err = svc.RecordReceipt(context.Background(), nil, uuid.New(), day(2024, time.March, 6), types.CategoryDryBase, "")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown school: want ErrNotFound got=%v", err)
	}

	_, err = svc.RecordReceipt(context.Background(), nil, schoolID, day(2024, time.March, 6), "FROZEN", "")
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("unknown category: want ErrInvalidArgument got=%v", err)
	}
	if len(receiptRepo.rows) != 1 {
		t.Fatalf("failed writes must not persist: want=1 got=%d", len(receiptRepo.rows))
	}
}
