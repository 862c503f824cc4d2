package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers Current by n, never below zero.
func (h *HealthData) Damage(n int) {
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal raises Current by n, never above Max.
func (h *HealthData) Heal(n int) {
	h.Current += n
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
