package selection

// State holds the favorites set. Order keeps insertion order for rendering,
// Favorites is the membership index.
type State struct {
	Favorites map[string]bool
	Order     []string
}

// Event types
type FavoritesChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

type FavoritesClearedEvent struct{}
