package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	placeshandler "places_backend/internal/feature/places/transport/handler"
	usershandler "places_backend/internal/feature/users/transport/handler"
	"places_backend/internal/platform/http/handler"
	jwtmw "places_backend/internal/platform/jwt"
)

func NewRouter(users *usershandler.UsersHandler, places *placeshandler.PlacesHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのプリフライトに応答するためCORSを有効化
	// OPTIONSは認証ゲートも素通しする（jwtmw.AuthRequiredを参照）
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// ユーザー一覧（パスワードは投影から除外）
	r.GET("/users", users.List)
	// 新規ユーザー登録
	r.POST("/users/signup", users.Signup)
	// ログイン（JWT 発行）
	r.POST("/users/login", users.Login)
	// place参照系は公開
	r.GET("/places/:id", places.GetByID)
	r.GET("/users/:id/places", places.ListByUser)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/places", places.Create)
		auth.PATCH("/places/:id", places.Update)
		auth.DELETE("/places/:id", places.Delete)
	}

	return r
}
