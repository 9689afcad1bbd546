// Package catalog implements driven.ProductSource over the products HTTP API.
//
// The client issues plain GET requests with a fixed timeout, never retries and
// never caches. Failures are normalised into the domain taxonomy:
//
//   - *domain.ServerError: the server answered with a non-2xx status
//   - *domain.UnreachableError: the request went out but no response came back
//   - *domain.RequestConfigError: the request could not be built or sent,
//     including client-side timeouts and undecodable bodies
//
// Product lookups collapse all of the above into *domain.ProductNotFoundError.
package catalog
