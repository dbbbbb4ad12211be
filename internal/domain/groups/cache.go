package groups

// Cache fronts CompleteData for the handler path. Implementations
// return cloned values; callers may mutate what they get back.
type Cache interface {
	Get(groupID string) (*CompleteData, bool)
	Set(groupID string, data *CompleteData)
	Delete(groupID string)
	Clear()
}

type noopCache struct{}

func (noopCache) Get(string) (*CompleteData, bool) {
	return nil, false
}

func (noopCache) Set(string, *CompleteData) {}

func (noopCache) Delete(string) {}

func (noopCache) Clear() {}
