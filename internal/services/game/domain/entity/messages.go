package entity

import "fmt"

// Notification texts.
const (
	MessageLevelUp  = "level up!"
	MessageGameOver = "Game over"
)

// ExpGainedMessage reports experience earned from a fight.
func ExpGainedMessage(xp int) string {
	return fmt.Sprintf("+%d exp", xp)
}

// HPLostMessage reports hit points lost in a fight.
func HPLostMessage(damage int) string {
	return fmt.Sprintf("-%d hp", damage)
}
