/*
Package realignsdk provides a client SDK for the NorthPath realignment service.

# Client vs Session

  - Client: public endpoints (health, question bank, scoring, shared links)
  - Session: endpoints that need a bearer token issued by the identity provider

	client := realignsdk.NewClient("https://realign.example.com")

	questions, err := client.GetQuestions(ctx, "comprehensive-package")
	scores, err := client.Score(ctx, realignsdk.ScoreRequest{Answers: answers, Budget: 2_500_000})

	session := client.NewSession(accessToken, "realign:read realign:write")
	r, err := session.Submit(ctx, realignsdk.SubmitRequest{...})

# Scope Requirements

Session methods document the scope they need:

  - realign:read: list and read realignments, versions and scenarios
  - realign:write: submit, update, delete, restore, share
  - realign:admin: consultant views (also granted by consultant email domain)

Client-side scope checks are on by default and can be turned off:

	client.CheckScopes = false

# Errors

Every non-success response is returned as an *APIError. Compare with the
predefined errors:

	if errors.Is(err, realignsdk.ErrTierLimit) {
		// upgrade prompt
	}

Sessions are safe for concurrent use.
*/
package realignsdk
