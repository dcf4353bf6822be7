// Package api is the remote data gateway for the customer backend.
//
// It translates front-end intents into REST calls against a configured base
// URL and decodes the JSON responses. Two resources are exposed, customers and
// addresses, each with list/get/create/update/delete operations.
//
// Outcomes fall into three groups:
//
//   - Reads return the decoded entity, or a *ServerError when the backend
//     answered with a non-2xx status.
//   - Mutations return a Result carrying the backend's message whether or not
//     the call succeeded. Result.Err converts a failed Result into a
//     *ServerError for callers that prefer error returns.
//   - Anything that prevents a complete exchange (connection refused, a body
//     that is not JSON, a cancelled context) is a *TransportError.
//
// The gateway never retries, never deduplicates and never serialises
// concurrent calls. Ordering between independent calls is the caller's
// concern.
package api
