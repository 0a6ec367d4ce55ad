package fuzzy

import "container/list"

// Cache is an LRU cache of ranked results keyed by folded query.
// A fuzzy session types a query one character at a time and frequently
// deletes back, so recent queries are worth keeping.
type Cache struct {
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	query   string
	results []Result
}

// NewCache creates an LRU cache holding at most maxSize queries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get returns a copy of the results cached for query, or nil.
func (c *Cache) Get(query string) []Result {
	elem, ok := c.items[query]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(elem)
	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	return copyResults(entry.results)
}

// Set stores results for query, evicting the least recently used entry
// when full.
func (c *Cache) Set(query string, results []Result) {
	if elem, ok := c.items[query]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).results = copyResults(results) //nolint:errcheck // list only contains *cacheEntry
		return
	}
	if c.lru.Len() >= c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.lru.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).query) //nolint:errcheck // list only contains *cacheEntry
		}
	}
	c.items[query] = c.lru.PushFront(&cacheEntry{query: query, results: copyResults(results)})
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

func copyResults(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = r
		if r.Matches != nil {
			out[i].Matches = append([]int(nil), r.Matches...)
		}
	}
	return out
}
