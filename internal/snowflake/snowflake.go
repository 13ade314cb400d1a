package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node   *snowflake.Node
	nodeMu sync.Mutex
)

// Init initializes the snowflake node with the given node ID.
// Node ID should be unique across all instances (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	nodeMu.Lock()
	node = n
	nodeMu.Unlock()
	return nil
}

// NextID generates a new unique snowflake ID. Node 0 is used if Init was never called.
func NextID() int64 {
	nodeMu.Lock()
	if node == nil {
		node, _ = snowflake.NewNode(0)
	}
	n := node
	nodeMu.Unlock()
	return n.Generate().Int64()
}
