package builtin

// Durations in block-time seconds, used when building schedules.
const SecondsInMinute = 60
const SecondsInHour = 3600
const SecondsInDay = 86400
const SecondsInWeek = 7 * SecondsInDay
const SecondsInYear = 31556925
