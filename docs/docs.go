// Package docs Swagger文档
// 由 swag init -g cmd/api/main.go 重新生成
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["认证"], "summary": "用户注册", "responses": {"201": {"description": "Created"}, "409": {"description": "邮箱已存在"}}}},
        "/auth/login": {"post": {"tags": ["认证"], "summary": "用户登录", "responses": {"200": {"description": "OK"}, "401": {"description": "邮箱或密码错误"}}}},
        "/auth/refresh": {"post": {"tags": ["认证"], "summary": "刷新Token", "responses": {"200": {"description": "OK"}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["认证"], "summary": "退出登录", "responses": {"200": {"description": "OK"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["认证"], "summary": "当前用户", "responses": {"200": {"description": "OK"}}}},
        "/genres": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["分类"], "summary": "分类列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["分类"], "summary": "创建分类", "responses": {"201": {"description": "Created"}}}
        },
        "/genres/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["分类"], "summary": "分类详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["分类"], "summary": "修改分类", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["分类"], "summary": "删除分类", "responses": {"200": {"description": "OK"}}}
        },
        "/books": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["图书"], "summary": "图书列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["图书"], "summary": "创建图书", "responses": {"201": {"description": "Created"}}}
        },
        "/books/genre/{genre_id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["图书"], "summary": "分类下的图书", "responses": {"200": {"description": "OK"}}}},
        "/books/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["图书"], "summary": "图书详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["图书"], "summary": "修改图书", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["图书"], "summary": "删除图书", "responses": {"200": {"description": "OK"}}}
        },
        "/transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["交易"], "summary": "交易列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["交易"], "summary": "创建交易", "responses": {"201": {"description": "Created"}, "409": {"description": "库存不足"}}}
        },
        "/transactions/statistics": {"get": {"security": [{"BearerAuth": []}], "tags": ["交易"], "summary": "销售统计", "responses": {"200": {"description": "OK"}}}},
        "/transactions/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["交易"], "summary": "交易详情", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Bookstore Admin API",
	Description:      "书店后台管理：分类、图书、交易与销售统计",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
