// Package statemachine describes the order lifecycle. Orders are created as
// pending and the restaurant moves them along by phone; no endpoint in this
// service applies a transition, the table is published for clients.
package statemachine

import "restaurant-bot/models"

// Transition defines a status change and who performs it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor string             `json:"actor"`
}

var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: "restaurant"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "restaurant"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "customer"},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: "restaurant"},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: "restaurant"},
	{From: models.StatusPreparing, To: models.StatusDelivered, Actor: "restaurant"},
}

// ValidTransitionsFrom returns the distinct next statuses from status
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

func GetAllTransitions() []Transition {
	return validTransitions
}

// Info is the lifecycle summary served to clients
type Info struct {
	Statuses       []models.OrderStatus `json:"statuses"`
	Initial        models.OrderStatus   `json:"initial"`
	Transitions    []Transition         `json:"transitions"`
	TerminalStates []models.OrderStatus `json:"terminalStates"`
}

func Describe() Info {
	var terminal []models.OrderStatus
	for _, s := range models.OrderStatuses {
		if IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	return Info{
		Statuses:       models.OrderStatuses,
		Initial:        models.StatusPending,
		Transitions:    GetAllTransitions(),
		TerminalStates: terminal,
	}
}
