// Package openweather provides a client for the OpenWeather current
// conditions API. The client issues a single bounded HTTP call per request
// and maps upstream failures to sentinel errors the API layer translates
// into status codes.
package openweather
