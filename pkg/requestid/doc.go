// Package requestid attaches a correlation id to a context so every log
// record of one operation can be tied together.
//
//	ctx = requestid.WithContext(ctx, requestid.Resolve(callerID))
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Caller-supplied ids are accepted only when Valid; otherwise a UUID is
// generated.
package requestid
