package servers

//go:generate oapi-codegen -generate types,server,spec -package servers -o server.gen.go ../../../api/openapi.yml
