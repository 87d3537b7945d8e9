package dto

type DashboardResponse struct {
	UsersCount       int64 `json:"usersCount"`
	RestaurantsCount int64 `json:"restaurantsCount"`
	PostsCount       int64 `json:"postsCount"`
}
