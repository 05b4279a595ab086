// Package httpapi exposes a Solver over HTTP with a chi router.
//
//	GET  /healthz     liveness
//	POST /v1/tables   {"deal": "<PBN>"}
//	POST /v1/solve    {"deal", "trump", "leader", "played", "all"}
package httpapi
