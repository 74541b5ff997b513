// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
    "paths": {
        "/user/register": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Register user",
                "parameters": [{"description": "Wallet", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterUserRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/user/{userID}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get user",
                "parameters": [{"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/wallet/{wallet}/items": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "List wallet items",
                "parameters": [{"type": "string", "description": "Wallet address", "name": "wallet", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/booster/open": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["booster"],
                "summary": "Open booster",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "query", "required": true},
                    {"type": "string", "description": "Booster ID", "name": "booster_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/booster/{userID}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["booster"],
                "summary": "List boosters",
                "parameters": [{"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/fusion": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fusion"],
                "summary": "Fuse sticker into token",
                "parameters": [{"description": "Fusion", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FuseStickerRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/fusion/tokens": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fusion"],
                "summary": "Fuse two tokens",
                "parameters": [{"description": "Fusion", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FuseTokensRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/quests": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["quest"],
                "summary": "List quests",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/quests/{userID}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["quest"],
                "summary": "User quest board",
                "parameters": [{"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/quests/complete": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quest"],
                "summary": "Complete quest",
                "parameters": [{"description": "Quest", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CompleteQuestRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/stake": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["staking"],
                "summary": "Stake scrap",
                "parameters": [{"description": "Stake", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.StakeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            },
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["staking"],
                "summary": "List stakes",
                "parameters": [{"type": "string", "description": "User ID", "name": "user_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/staking/{userID}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["staking"],
                "summary": "List stakes",
                "parameters": [{"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/token": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["token"],
                "summary": "Mint token",
                "parameters": [{"description": "Token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.MintTokenRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        },
        "/token/{tokenID}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["token"],
                "summary": "Get token",
                "parameters": [{"type": "string", "description": "Token ID", "name": "tokenID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            },
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["token"],
                "summary": "Attach sticker",
                "parameters": [
                    {"type": "string", "description": "Token ID", "name": "tokenID", "in": "path", "required": true},
                    {"description": "Sticker", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AttachStickerRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.RegisterUserRequest": {
            "type": "object",
            "required": ["wallet_address"],
            "properties": {"wallet_address": {"type": "string", "maxLength": 128}}
        },
        "handler.FuseStickerRequest": {
            "type": "object",
            "required": ["sticker_id", "token_id", "user_id"],
            "properties": {"sticker_id": {"type": "string"}, "token_id": {"type": "string"}, "user_id": {"type": "string"}}
        },
        "handler.FuseTokensRequest": {
            "type": "object",
            "required": ["nft1_id", "nft2_id", "user_id"],
            "properties": {"nft1_id": {"type": "string"}, "nft2_id": {"type": "string"}, "user_id": {"type": "string"}}
        },
        "handler.CompleteQuestRequest": {
            "type": "object",
            "required": ["quest_id", "user_id"],
            "properties": {"quest_id": {"type": "string"}, "user_id": {"type": "string"}}
        },
        "handler.StakeRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {"amount": {"type": "number"}, "user_id": {"type": "string"}}
        },
        "handler.MintTokenRequest": {
            "type": "object",
            "required": ["image_url", "name", "owner_id"],
            "properties": {
                "attributes": {"type": "object", "additionalProperties": true},
                "image_url": {"type": "string"},
                "name": {"type": "string", "maxLength": 200, "minLength": 1},
                "owner_id": {"type": "string"}
            }
        },
        "handler.AttachStickerRequest": {
            "type": "object",
            "required": ["sticker_id"],
            "properties": {"sticker_id": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ScrapWorld API",
	Description:      "Game ledger for boosters, fusion, quests, staking and NFT metadata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
