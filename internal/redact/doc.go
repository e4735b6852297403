// Package redact masks secrets in source text before it is pasted into a
// code dump that may be shared outside the repository.
//
// Detection is regex based: API keys, JWTs, private key headers, AWS keys,
// bearer tokens, connection-string passwords and provider tokens (GitHub,
// Slack, OpenAI, Anthropic). Files whose paths match a configured glob are
// replaced wholesale.
package redact
