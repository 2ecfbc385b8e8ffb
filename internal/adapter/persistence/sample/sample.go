// Package sample holds the demo dataset shown on first start, before anything was saved.
package sample

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed dataset.json
var dataset []byte

// Demo dates that are anchored on the current day so the countdown and reminder views
// have something to show.
var relativeDates = []struct {
	slot entities.Slot
	id   string
	days int
}{
	{slot: entities.SlotOrders, id: "ANN001", days: 5},
	{slot: entities.SlotOrders, id: "ANN002", days: -2},
	{slot: entities.SlotTrainings, id: "t1", days: 10},
	{slot: entities.SlotTasks, id: "task1", days: 3},
}

var _ usecase.FallbackFunc = Dataset

// Dataset decodes the embedded records and fills the day-relative dates from today.
func Dataset(today entities.Date) usecase.Snapshot {
	var snap usecase.Snapshot
	if err := json.Unmarshal(dataset, &snap); err != nil {
		log.Printf("[sample] embedded dataset unreadable err=%v", err)
		return usecase.Snapshot{}
	}
	snap.MachineTypes = append([]string{}, entities.DefaultMachineTypes...)

	for _, rel := range relativeDates {
		d, err := today.AddDays(rel.days)
		if err != nil {
			continue
		}
		switch rel.slot {
		case entities.SlotOrders:
			for i := range snap.Orders {
				if snap.Orders[i].ID == rel.id {
					snap.Orders[i].DeliveryDate = d
				}
			}
		case entities.SlotTrainings:
			for i := range snap.Trainings {
				if snap.Trainings[i].ID == rel.id {
					snap.Trainings[i].DueDate = d
				}
			}
		case entities.SlotTasks:
			for i := range snap.Tasks {
				if snap.Tasks[i].ID == rel.id {
					snap.Tasks[i].DueDate = d
				}
			}
		}
	}
	return snap
}
