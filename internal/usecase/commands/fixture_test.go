//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/pkg/clock"
	sharedmock "badge-promotion-engine/internal/testutil/mock/shared"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

// fixture wires a mock unit of work whose Within runs the callback once on a
// mock transaction.
type fixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	promotions   *sharedmock.MockPromotionRepository
	reservations *sharedmock.MockReservationRepository
	badgeApps    *sharedmock.MockBadgeApplicationRepository
	audit        *sharedmock.MockAuditSink
	clock        *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		promotions:   sharedmock.NewMockPromotionRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		badgeApps:    sharedmock.NewMockBadgeApplicationRepository(ctrl),
		audit:        sharedmock.NewMockAuditSink(ctrl),
		clock:        clock.NewMockClock(fixedNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Promotions().Return(f.promotions).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().BadgeApplications().Return(f.badgeApps).AnyTimes()

	return f
}

func (f *fixture) ledger() *commands.ReservationLedger {
	return commands.NewReservationLedger(reservation.NewFactory(f.clock))
}

func (f *fixture) promotionCommands() commands.PromotionCommands {
	return commands.NewPromotionUseCase(f.uow, f.ledger(), f.audit, f.clock)
}

func (f *fixture) badgeCommands() commands.BadgeCommands {
	return commands.NewBadgeUseCase(f.uow, f.ledger(), f.audit, f.clock)
}

// expectAudit asserts exactly one event of typ is recorded.
func (f *fixture) expectAudit(typ shared.AuditEventType) *gomock.Call {
	return f.audit.EXPECT().Record(gomock.Any(), auditOfType(typ)).Times(1)
}

type auditTypeMatcher struct{ typ shared.AuditEventType }

func (m auditTypeMatcher) Matches(x any) bool {
	ev, ok := x.(shared.AuditEvent)
	return ok && ev.Type == m.typ
}

func (m auditTypeMatcher) String() string { return "audit event of type " + string(m.typ) }

func auditOfType(typ shared.AuditEventType) gomock.Matcher { return auditTypeMatcher{typ: typ} }
