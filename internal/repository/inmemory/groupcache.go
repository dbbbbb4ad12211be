package inmemory

import (
	"sync"
	"time"

	groupsdomain "squadtab-go/internal/domain/groups"
)

// GroupDataCache is a TTL cache over complete group data. Values are
// cloned on both read and write so cached entries are never shared
// with callers.
type GroupDataCache struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]groupDataItem
}

type groupDataItem struct {
	value     *groupsdomain.CompleteData
	expiresAt time.Time
}

func NewGroupDataCache(ttl time.Duration) *GroupDataCache {
	return &GroupDataCache{
		ttl:   ttl,
		items: make(map[string]groupDataItem),
	}
}

func (c *GroupDataCache) Get(groupID string) (*groupsdomain.CompleteData, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[groupID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[groupID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, groupID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneGroupData(item.value), true
}

func (c *GroupDataCache) Set(groupID string, data *groupsdomain.CompleteData) {
	if data == nil || c.ttl <= 0 {
		c.Delete(groupID)
		return
	}

	c.mu.Lock()
	c.items[groupID] = groupDataItem{
		value:     cloneGroupData(data),
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *GroupDataCache) Delete(groupID string) {
	c.mu.Lock()
	delete(c.items, groupID)
	c.mu.Unlock()
}

func (c *GroupDataCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]groupDataItem)
	c.mu.Unlock()
}

func cloneGroupData(data *groupsdomain.CompleteData) *groupsdomain.CompleteData {
	cloned := *data
	cloned.Members = append([]groupsdomain.Member(nil), data.Members...)
	cloned.Progress = append([]groupsdomain.MemberProgress(nil), data.Progress...)
	cloned.Leaderboard = append([]groupsdomain.LeaderboardEntry(nil), data.Leaderboard...)
	return &cloned
}
