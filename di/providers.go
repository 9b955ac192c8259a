package di

import "hostal/transport/http/middleware"

func provideAuthMiddleware(m middleware.AuthRole) middleware.Auth {
	return m
}
