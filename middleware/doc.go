// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware wraps handlers with request IDs, logging and CORS, and
holds the JSON helpers shared by the handlers package.

# Request IDs and Logging

	mux.HandleFunc("GET /polls", middleware.WithLogging(h.ListPolls))

WithLogging reuses the caller's X-Request-ID header or generates a UUID,
and echoes it on the response. Every request logs "request started"
(request_id, method, path, remote) and "request completed" with the
status written by the handler and duration_ms.

# CORS

	server := http.Server{Handler: middleware.CORS(mux)}

Reflects the request Origin (or "*") and allows GET, POST and OPTIONS with
the headers Content-Type, Authorization and X-Request-ID. X-Request-ID is
exposed to browsers. Preflight requests are answered without reaching
the wrapped handler.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, polls)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP

GetClientIP prefers X-Forwarded-For, then X-Real-IP, then RemoteAddr
without its port. It fills the remote field of the request log.
*/
package middleware
