package http

// VerifySlackSignature exposes verifySlackSignature for tests
var VerifySlackSignature = verifySlackSignature
