package book

// Notice is a transient, user-visible notification emitted by a session operation.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeAddedToFavorites
	NoticeRemovedFromFavorites
	NoticeRandomShown
	NoticeErrorLoading
	NoticeNoFavorites
)

func (n Notice) String() string {
	switch n {
	case NoticeAddedToFavorites:
		return "added_to_favorites"
	case NoticeRemovedFromFavorites:
		return "removed_from_favorites"
	case NoticeRandomShown:
		return "random_shown"
	case NoticeErrorLoading:
		return "error_loading"
	case NoticeNoFavorites:
		return "no_favorites"
	default:
		return "none"
	}
}

// Tab selects which listing is presented.
type Tab int

const (
	TabAll Tab = iota
	TabFavorites
)

func (t Tab) String() string {
	if t == TabFavorites {
		return "favorites"
	}
	return "all"
}
