package redis

import (
	"fmt"

	"github.com/mcoot/connectfour/internal/model"
)

// Key prefix for all connectfour data
const keyPrefix = "connectfour"

// scoresKey returns the Redis key for the root scores of a position
func scoresKey(key model.ScoreKey) string {
	return fmt.Sprintf("%s:scores:d%d:%s", keyPrefix, key.Depth, key.Position)
}

// scoresIndexKey returns the Redis key for the SET of all score keys
func scoresIndexKey() string {
	return fmt.Sprintf("%s:idx:scores", keyPrefix)
}
