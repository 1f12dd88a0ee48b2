package model

// CarryforwardYears is how many following years a net loss may offset.
const CarryforwardYears = 3

// LossCarryforward is a net operating loss and its usage in the following years.
type LossCarryforward struct {
	ID         int64
	LossYear   int
	LossAmount int64
	UsedYear1  int64
	UsedYear2  int64
	UsedYear3  int64
	Memo       string
}

// Used returns the total consumed across all slots.
func (l LossCarryforward) Used() int64 {
	return l.UsedYear1 + l.UsedYear2 + l.UsedYear3
}

// Slot returns the usage recorded for the n-th following year (1-3).
func (l LossCarryforward) Slot(n int) int64 {
	switch n {
	case 1:
		return l.UsedYear1
	case 2:
		return l.UsedYear2
	case 3:
		return l.UsedYear3
	}
	return 0
}

// WithSlot returns a copy with the n-th slot set to v.
func (l LossCarryforward) WithSlot(n int, v int64) LossCarryforward {
	switch n {
	case 1:
		l.UsedYear1 = v
	case 2:
		l.UsedYear2 = v
	case 3:
		l.UsedYear3 = v
	}
	return l
}
