// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into notification mail.
package queue

// BookingApprovedEvent is published when the HOD approves a booking
// request.  It carries everything the mail consumer needs so it never has
// to query the primary database.
type BookingApprovedEvent struct {
	RequestID uint64 `json:"request_id"`
	Email     string `json:"email"`
	Room      string `json:"room"`
	Date      string `json:"date"`
	Period    int    `json:"period"`
	Purpose   string `json:"purpose"`
}
