package types

// Standard collection names for the structured store.
const (
	CollectionBooks      = "books"
	CollectionUsers      = "users"
	CollectionCart       = "cart_items"
	CollectionWishlist   = "wishlist"
	CollectionOrders     = "orders"
	CollectionReviews    = "reviews"
	CollectionNewsletter = "newsletter"
	CollectionContacts   = "contacts"
)

// StandardCollectionNames lists all collection names for enumeration.
var StandardCollectionNames = []string{
	CollectionBooks,
	CollectionUsers,
	CollectionCart,
	CollectionWishlist,
	CollectionOrders,
	CollectionReviews,
	CollectionNewsletter,
	CollectionContacts,
}

// SessionKey is the well-known key under which the flat key-value store
// holds the serialized session user.
const SessionKey = "currentUser"
