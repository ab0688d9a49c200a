package watch

// Export internal functions for testing
var ContentSum = contentSum
