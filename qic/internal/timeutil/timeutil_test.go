package timeutil

import "testing"

func check(t *testing.T, got Time, year, month, day, hour, minute, second int) {
	t.Helper()
	want := Time{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFromEpochSecondsZero(t *testing.T) {
	check(t, FromEpochSeconds(0), 1970, 1, 0, 0, 0, 0)
}

func TestFromEpochSecondsOneDay(t *testing.T) {
	check(t, FromEpochSeconds(86400), 1970, 1, 1, 0, 0, 0)
}

func TestFromEpochSecondsCrossesYearBoundary(t *testing.T) {
	check(t, FromEpochSeconds(31536000), 1970, 12, 31, 0, 0, 0)
}

func TestFromEpochSecondsYear2000IsNotLeap(t *testing.T) {
	// Non-standard rule: a century year is never leap, even when
	// divisible by 400, so February only reaches day 28.
	check(t, FromEpochSeconds(951782400), 2000, 2, 28, 0, 0, 0)
	check(t, FromEpochSeconds(951868800), 2000, 3, 1, 0, 0, 0)
}

func TestFromEpochSecondsUsesLeapFlagFromCrossingYear(t *testing.T) {
	// 2003 is non-leap and 2004 is leap under the non-standard rule, so
	// this is exactly the transition where using a freshly recomputed
	// leap flag for the incoming year (2004, leap) instead of the one
	// captured for the outgoing year (2003, non-leap) during the loop
	// iteration that crossed the boundary would size February
	// differently and shift the result by a day.
	check(t, FromEpochSeconds(1078012800), 2004, 3, 1, 0, 0, 0)
}

func TestFromEpochSecondsTimeOfDay(t *testing.T) {
	got := FromEpochSeconds(86400 + 3*3600 + 45*60 + 30)
	check(t, got, 1970, 1, 1, 3, 45, 30)
}

func TestStdClampsOutOfRangeFields(t *testing.T) {
	tm := Time{Year: 1998, Month: 0, Day: 0, Hour: 1, Minute: 2, Second: 3}
	std := tm.Std()
	if std.Month() != 1 || std.Day() != 1 {
		t.Fatalf("Std did not clamp month/day: %v", std)
	}
}
