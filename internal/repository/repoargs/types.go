package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	GameRepoName    RepositoryName = "game"
	OrderRepoName   RepositoryName = "order"
	CommentRepoName RepositoryName = "comment"
	BanRepoName     RepositoryName = "ban"
)
