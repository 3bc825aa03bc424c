package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc            func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error
	UpdateDescriptionFunc func(ctx context.Context, id uuid.UUID, text string) error

	calls struct {
		Create []struct {
			Item *domain.Item
		}
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.ItemStatus
		}
		UpdateDescription []struct {
			ID   uuid.UUID
			Text string
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockUpdateStatus      sync.RWMutex
	lockUpdateDescription sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Item *domain.Item
	}{Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Item *domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("itemRepoMock.UpdateStatusFunc: method is nil but itemRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.ItemStatus
	}{ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *itemRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.ItemStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateDescription(ctx context.Context, id uuid.UUID, text string) error {
	if mock.UpdateDescriptionFunc == nil {
		panic("itemRepoMock.UpdateDescriptionFunc: method is nil but itemRepo.UpdateDescription was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Text string
	}{ID: id, Text: text}
	mock.lockUpdateDescription.Lock()
	mock.calls.UpdateDescription = append(mock.calls.UpdateDescription, callInfo)
	mock.lockUpdateDescription.Unlock()
	return mock.UpdateDescriptionFunc(ctx, id, text)
}

func (mock *itemRepoMock) UpdateDescriptionCalls() []struct {
	ID   uuid.UUID
	Text string
} {
	mock.lockUpdateDescription.RLock()
	calls := mock.calls.UpdateDescription
	mock.lockUpdateDescription.RUnlock()
	return calls
}

var _ claimRepo = &claimRepoMock{}

type claimRepoMock struct {
	CreateFunc             func(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	UpdateStatusFunc       func(ctx context.Context, id uuid.UUID, status domain.ClaimStatus, resolvedAt time.Time) error
	RejectOtherPendingFunc func(ctx context.Context, itemID, excludeID uuid.UUID, resolvedAt time.Time) (int, error)

	calls struct {
		Create []struct {
			Claim *domain.Claim
		}
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateStatus []struct {
			ID         uuid.UUID
			Status     domain.ClaimStatus
			ResolvedAt time.Time
		}
		RejectOtherPending []struct {
			ItemID    uuid.UUID
			ExcludeID uuid.UUID
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockUpdateStatus       sync.RWMutex
	lockRejectOtherPending sync.RWMutex
}

func (mock *claimRepoMock) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	if mock.CreateFunc == nil {
		panic("claimRepoMock.CreateFunc: method is nil but claimRepo.Create was just called")
	}
	callInfo := struct {
		Claim *domain.Claim
	}{Claim: claim}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, claim)
}

func (mock *claimRepoMock) CreateCalls() []struct {
	Claim *domain.Claim
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *claimRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetByIDFunc == nil {
		panic("claimRepoMock.GetByIDFunc: method is nil but claimRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *claimRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *claimRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ClaimStatus, resolvedAt time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("claimRepoMock.UpdateStatusFunc: method is nil but claimRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Status     domain.ClaimStatus
		ResolvedAt time.Time
	}{ID: id, Status: status, ResolvedAt: resolvedAt}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, resolvedAt)
}

func (mock *claimRepoMock) UpdateStatusCalls() []struct {
	ID         uuid.UUID
	Status     domain.ClaimStatus
	ResolvedAt time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *claimRepoMock) RejectOtherPending(ctx context.Context, itemID, excludeID uuid.UUID, resolvedAt time.Time) (int, error) {
	if mock.RejectOtherPendingFunc == nil {
		panic("claimRepoMock.RejectOtherPendingFunc: method is nil but claimRepo.RejectOtherPending was just called")
	}
	callInfo := struct {
		ItemID    uuid.UUID
		ExcludeID uuid.UUID
	}{ItemID: itemID, ExcludeID: excludeID}
	mock.lockRejectOtherPending.Lock()
	mock.calls.RejectOtherPending = append(mock.calls.RejectOtherPending, callInfo)
	mock.lockRejectOtherPending.Unlock()
	return mock.RejectOtherPendingFunc(ctx, itemID, excludeID, resolvedAt)
}

func (mock *claimRepoMock) RejectOtherPendingCalls() []struct {
	ItemID    uuid.UUID
	ExcludeID uuid.UUID
} {
	mock.lockRejectOtherPending.RLock()
	calls := mock.calls.RejectOtherPending
	mock.lockRejectOtherPending.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

// RunInTx delegates to RunInTxFunc, or just runs fn when unset.
func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ Gateway = &gatewayMock{}

type gatewayMock struct {
	DescribeFunc func(ctx context.Context, title, imageRef string) (string, error)

	calls struct {
		Describe []struct {
			Title    string
			ImageRef string
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *gatewayMock) Describe(ctx context.Context, title, imageRef string) (string, error) {
	if mock.DescribeFunc == nil {
		panic("gatewayMock.DescribeFunc: method is nil but Gateway.Describe was just called")
	}
	callInfo := struct {
		Title    string
		ImageRef string
	}{Title: title, ImageRef: imageRef}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, callInfo)
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(ctx, title, imageRef)
}

func (mock *gatewayMock) DescribeCalls() []struct {
	Title    string
	ImageRef string
} {
	mock.lockDescribe.RLock()
	calls := mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}
