// Package api implements the HTTP clients for the kost backend.
//
// Four surfaces:
//
//   - [Gateway] : the authenticated request path every admin call goes
//     through. It injects the bearer token from the session store, turns a
//     401 into a session teardown, and normalizes responses (JSON, raw text,
//     204 No Content).
//   - [AdminService] : typed operations over the gateway for the admin
//     resources (kost profile, rooms, nearby places, rules, facilities) plus
//     the login call that establishes the session.
//   - [PublicService] : unauthenticated reads (public kost profile, public
//     room listing, health).
//   - [ChatService] : the conversational endpoint; a failed send is reported
//     as a bot-role message so a transcript never loses a turn.
//
// Error taxonomy: [shared.ErrUnauthenticated] (no token, no network call),
// [shared.ErrUnauthorized] (401, token cleared), [shared.StatusError] (other
// non-2xx), transport failures wrapped in [shared.ErrAPIRequest].
package api
