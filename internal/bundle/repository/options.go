package repository

type CreateOptions struct {
	ID        string
	UserID    string
	Name      string
	Addresses []string
}

type ListOptions struct {
	UserID string
	Limit  int64
	Offset int64
}

type UpdateOptions struct {
	ID        string
	Name      string
	Addresses []string
}
