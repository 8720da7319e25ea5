package adjustment

import "context"

type BonusRepository interface {
	Create(ctx context.Context, bonus *Bonus) error
	List(ctx context.Context, filter PeriodFilter) ([]Bonus, error)
	SetApproval(ctx context.Context, id int64, approved bool) (*Bonus, error)
	Delete(ctx context.Context, id int64) error
}

type DeductionRepository interface {
	Create(ctx context.Context, deduction *Deduction) error
	List(ctx context.Context, filter PeriodFilter) ([]Deduction, error)
	Delete(ctx context.Context, id int64) error
}

type ExtraDayRepository interface {
	Create(ctx context.Context, extraDay *ExtraDay) error
	List(ctx context.Context, filter PeriodFilter) ([]ExtraDay, error)
	Delete(ctx context.Context, id int64) error
}
