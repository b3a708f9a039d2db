package router

import (
	"blueblog/api"
)

func (router RouterGroup) UserRouter() {
	userApi := api.AppGroupApp.UserApi
	userRouter := router.Group("users")
	userRouter.POST("register", userApi.UserRegister)
	userRouter.POST("login", userApi.UserLogin)
	userRouter.GET("profile", userApi.UserProfile)
	userRouter.PUT("update-nickname", userApi.UserUpdateNickname)
	userRouter.PUT("update-bio", userApi.UserUpdateBio)
	userRouter.POST("upload-avatar", userApi.UserUploadAvatar)
	userRouter.GET("check-username/:username", userApi.CheckUsername)
	userRouter.GET("check-email/:email", userApi.CheckEmail)
	userRouter.GET(":id", userApi.UserDetail)
	userRouter.DELETE(":id", userApi.UserDelete)
}
