package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mudafacil/internal/domain/catalog"
	"mudafacil/internal/domain/entities"
	"mudafacil/internal/domain/pricing"
	"mudafacil/internal/domain/validation"
	"mudafacil/internal/usecase/interfaces"
	mock_interfaces "mudafacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSubmitFixture(t *testing.T, ctrl *gomock.Controller) (*SubmitEstimateUseCase, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIEstimateRepository) {
	t.Helper()
	c, err := catalog.New(catalog.DefaultEntries())
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewSubmitEstimateUseCase(validation.New(c), pricing.NewEngine(c), customers, estimates)
	return uc, customers, estimates
}

func submissionInput() (validation.CustomerInput, validation.MoveDetailsInput, []validation.LineItemInput) {
	cust := validation.CustomerInput{
		Name:    "Maria Silva",
		Email:   "maria@example.com",
		Phone:   "+55 11 91234-5678",
		Address: "Rua das Flores, 100",
	}
	move := validation.MoveDetailsInput{
		ApartmentType:      "2",
		PreferredMoveDate:  time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		CurrentAddress:     "Rua das Flores, 100",
		DestinationAddress: "Avenida Paulista, 900",
		OriginFloor:        3,
		DestinationFloor:   1,
	}
	items := []validation.LineItemInput{{ItemType: "sofa", Quantity: 1}}
	return cust, move, items
}

// 500 base + 350 apartment "2" + sofa (300 + 100) + 2 floors * 75.
const submissionTotal = 1400

func TestSubmitEstimateUseCase_Submit(t *testing.T) {
	t.Run("validation failure touches no store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newSubmitFixture(t, ctrl)

		cust, move, items := submissionInput()
		cust.Email = "not-an-email"
		_, err := uc.Submit(context.Background(), cust, move, items)

		var verr *validation.ValidationError
		if !errors.As(err, &verr) || !verr.HasField("email") {
			t.Fatalf("expected email validation error, got %v", err)
		}
	})

	t.Run("existing customer by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		existing := entities.Customer{ID: "cust-1", Name: "Maria Silva", Email: "maria@example.com", Phone: "+55 11 91234-5678"}
		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(existing, nil)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.CustomerID != "cust-1" || e.CustomerEmail != "maria@example.com" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Status != entities.EstimateStatusPendente {
					t.Fatalf("expected pendente, got %s", e.Status)
				}
				if e.TotalPrice != submissionTotal {
					t.Fatalf("expected total %d, got %d", submissionTotal, e.TotalPrice)
				}
				if len(e.LineItems) != 1 || !e.LineItems[0].NeedsDisassemble {
					t.Fatalf("expected snapshotted catalog defaults: %+v", e.LineItems)
				}
				return e, nil
			},
		)
		customers.EXPECT().UpdateStats(gomock.Any(), "maria@example.com", gomock.AssignableToTypeOf(entities.CustomerStatsUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd entities.CustomerStatsUpdate) error {
				if upd.MovesInc != 1 || upd.SpentInc != submissionTotal {
					t.Fatalf("unexpected stats update: %+v", upd)
				}
				return nil
			},
		)

		cust, move, items := submissionInput()
		res, err := uc.Submit(context.Background(), cust, move, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EstimateID == "" || res.CustomerID != "cust-1" || res.TotalPrice != submissionTotal {
			t.Fatalf("unexpected result: %+v", res)
		}
		uc.WaitForStats()
	})

	t.Run("stats update carries submitted name and phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		// Stored row has stale identity; the submission is the fresher source.
		stale := entities.Customer{ID: "cust-1", Name: "Old Name", Email: "maria@example.com", Phone: "+55 11 90000-0000"}
		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(stale, nil)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		customers.EXPECT().UpdateStats(gomock.Any(), "maria@example.com", gomock.AssignableToTypeOf(entities.CustomerStatsUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd entities.CustomerStatsUpdate) error {
				if upd.Name != "Maria Silva" || upd.Phone != "+55 11 91234-5678" {
					t.Fatalf("expected submitted identity in stats update, got name=%q phone=%q", upd.Name, upd.Phone)
				}
				return nil
			},
		)

		cust, move, items := submissionInput()
		if _, err := uc.Submit(context.Background(), cust, move, items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.WaitForStats()
	})

	t.Run("existing customer by phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		existing := entities.Customer{ID: "cust-2", Email: "maria@example.com", Phone: "+55 11 91234-5678"}
		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{}, nil)
		customers.EXPECT().FindByPhone(gomock.Any(), "+55 11 91234-5678").Return(existing, nil)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		customers.EXPECT().UpdateStats(gomock.Any(), "maria@example.com", gomock.Any()).Return(nil)

		cust, move, items := submissionInput()
		res, err := uc.Submit(context.Background(), cust, move, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerID != "cust-2" {
			t.Fatalf("unexpected result: %+v", res)
		}
		uc.WaitForStats()
	})

	t.Run("new customer created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{}, nil)
		customers.EXPECT().FindByPhone(gomock.Any(), "+55 11 91234-5678").Return(entities.Customer{}, nil)
		customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.Name != "Maria Silva" || c.Email != "maria@example.com" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		customers.EXPECT().UpdateStats(gomock.Any(), "maria@example.com", gomock.Any()).Return(nil)

		cust, move, items := submissionInput()
		if _, err := uc.Submit(context.Background(), cust, move, items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.WaitForStats()
	})

	t.Run("lost create race recovered by re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		winner := entities.Customer{ID: "cust-3", Email: "maria@example.com"}
		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{}, nil)
		customers.EXPECT().FindByPhone(gomock.Any(), "+55 11 91234-5678").Return(entities.Customer{}, nil)
		customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.ErrCustomerExists)
		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(winner, nil)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		customers.EXPECT().UpdateStats(gomock.Any(), "maria@example.com", gomock.Any()).Return(nil)

		cust, move, items := submissionInput()
		res, err := uc.Submit(context.Background(), cust, move, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerID != "cust-3" {
			t.Fatalf("expected winner's customer id, got %+v", res)
		}
		uc.WaitForStats()
	})

	t.Run("lost race and re-read empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, _ := newSubmitFixture(t, ctrl)

		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{}, nil)
		customers.EXPECT().FindByPhone(gomock.Any(), "+55 11 91234-5678").Return(entities.Customer{}, nil)
		customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.ErrCustomerExists)
		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{}, nil)

		cust, move, items := submissionInput()
		_, err := uc.Submit(context.Background(), cust, move, items)
		if !errors.Is(err, ErrCustomerConflict) {
			t.Fatalf("expected ErrCustomerConflict, got %v", err)
		}
	})

	t.Run("atomic write failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{ID: "cust-1", Email: "maria@example.com"}, nil)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrStorageUnavailable)

		cust, move, items := submissionInput()
		_, err := uc.Submit(context.Background(), cust, move, items)
		if !errors.Is(err, interfaces.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})

	t.Run("stats failure does not affect result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, estimates := newSubmitFixture(t, ctrl)

		customers.EXPECT().FindByEmail(gomock.Any(), "maria@example.com").Return(entities.Customer{ID: "cust-1", Email: "maria@example.com"}, nil)
		estimates.EXPECT().CreateWithLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		customers.EXPECT().UpdateStats(gomock.Any(), "maria@example.com", gomock.Any()).Return(errors.New("dynamo down"))

		cust, move, items := submissionInput()
		res, err := uc.Submit(context.Background(), cust, move, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalPrice != submissionTotal {
			t.Fatalf("unexpected result: %+v", res)
		}
		uc.WaitForStats()
	})
}

func TestSubmitEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newSubmitFixture(t, ctrl)

		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, estimates := newSubmitFixture(t, ctrl)
		estimates.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, estimates := newSubmitFixture(t, ctrl)
		estimates.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, estimates := newSubmitFixture(t, ctrl)
		expected := entities.Estimate{ID: "id-1", TotalPrice: 1550}
		estimates.EXPECT().GetByID(gomock.Any(), "id-1").Return(expected, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" || res.TotalPrice != 1550 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
