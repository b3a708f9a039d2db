package article

type Article struct{}
