package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Propfolio API
// @version         0.1.0
// @description     Prop-firm account tracking, dashboard stats, and phase pipelines.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
