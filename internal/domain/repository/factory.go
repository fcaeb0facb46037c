package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Products() ProductRepository
	Shows() ShowRepository
	Media() MediaRepository
	Messages() MessageRepository
	Carts() CartRepository
	Orders() OrderRepository
}
