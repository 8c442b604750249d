// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

// Placeholders in unitTemplate rewritten for every translation unit.
const (
	funcPlaceholder   = "doFormat_"
	numberPlaceholder = "42"
)

// groups are the suffixes of the four formatting functions in a unit.
var groups = []string{"a", "b", "c", "d"}

// unitTemplate is the body of every generated translation unit. Exactly one
// branch is compiled, selected by the method's preprocessor flags; each
// branch must print byte-identical output.
const unitTemplate = `
#ifdef USE_BOOST

#include <boost/format.hpp>
#include <iostream>

void doFormat_a() {
  std::cout << boost::format("a %s\n") % "somefile.cpp";
  std::cout << boost::format("a %s:%d\n") % "somefile.cpp" % 42;
  std::cout << boost::format("a %s:%d:%s\n") % "somefile.cpp" % 42 % "asdf";
  std::cout <<
    boost::format("a %s:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % "asdf";
  std::cout <<
    boost::format("a %s:%d:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % 2 % "asdf";
  std::cout <<
    boost::format("a %s:%d:%d:%d:%s %s:%d:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % 2 % "asdf" % "somefile.cpp" % 42 % 1 % 2 % "asdf";
}

void doFormat_b() {
  std::cout << boost::format("b %s\n") % "somefile.cpp";
  std::cout << boost::format("b %s:%d\n") % "somefile.cpp" % 42;
  std::cout << boost::format("b %s:%d:%s\n") % "somefile.cpp" % 42 % "asdf";
  std::cout <<
    boost::format("b %s:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % "asdf";
  std::cout <<
    boost::format("b %s:%d:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % 2 % "asdf";
}

void doFormat_c() {
  std::cout << boost::format("c %s\n") % "somefile.cpp";
  std::cout << boost::format("c %s:%d\n") % "somefile.cpp" % 42;
  std::cout << boost::format("c %s:%d:%s\n") % "somefile.cpp" % 42 % "asdf";
  std::cout <<
    boost::format("c %s:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % "asdf";
  std::cout <<
    boost::format("c %s:%d:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % 2 % "asdf";
}

void doFormat_d() {
  std::cout << boost::format("d %s\n") % "somefile.cpp";
  std::cout << boost::format("d %s:%d\n") % "somefile.cpp" % 42;
  std::cout << boost::format("d %s:%d:%s\n") % "somefile.cpp" % 42 % "asdf";
  std::cout <<
    boost::format("d %s:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % "asdf";
  std::cout <<
    boost::format("d %s:%d:%d:%d:%s\n") % "somefile.cpp" % 42 % 1 % 2 % "asdf";
}

#elif defined(USE_FOLLY)

#include <folly/Format.h>
#include <iostream>

void doFormat_a() {
  std::cout << folly::format("a {}\n", "somefile.cpp");
  std::cout << folly::format("a {}:{}\n", "somefile.cpp", 42);
  std::cout << folly::format("a {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  std::cout <<
    folly::format("a {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  std::cout <<
    folly::format("a {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
  std::cout <<
    folly::format("a {}:{}:{}:{}:{} {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_b() {
  std::cout << folly::format("b {}\n", "somefile.cpp");
  std::cout << folly::format("b {}:{}\n", "somefile.cpp", 42);
  std::cout << folly::format("b {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  std::cout <<
    folly::format("b {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  std::cout <<
    folly::format("b {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_c() {
  std::cout << folly::format("c {}\n", "somefile.cpp");
  std::cout << folly::format("c {}:{}\n", "somefile.cpp", 42);
  std::cout << folly::format("c {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  std::cout <<
    folly::format("c {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  std::cout <<
    folly::format("c {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_d() {
  std::cout << folly::format("d {}\n", "somefile.cpp");
  std::cout << folly::format("d {}:{}\n", "somefile.cpp", 42);
  std::cout << folly::format("d {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  std::cout <<
    folly::format("d {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  std::cout <<
    folly::format("d {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
}

#elif defined(USE_FMT)

#include "fmt/core.h"

void doFormat_a() {
  fmt::print("a {}\n", "somefile.cpp");
  fmt::print("a {}:{}\n", "somefile.cpp", 42);
  fmt::print("a {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  fmt::print("a {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  fmt::print("a {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
  fmt::print("a {}:{}:{}:{}:{} {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_b() {
  fmt::print("b {}\n", "somefile.cpp");
  fmt::print("b {}:{}\n", "somefile.cpp", 42);
  fmt::print("b {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  fmt::print("b {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  fmt::print("b {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_c() {
  fmt::print("c {}\n", "somefile.cpp");
  fmt::print("c {}:{}\n", "somefile.cpp", 42);
  fmt::print("c {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  fmt::print("c {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  fmt::print("c {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_d() {
  fmt::print("d {}\n", "somefile.cpp");
  fmt::print("d {}:{}\n", "somefile.cpp", 42);
  fmt::print("d {}:{}:{}\n", "somefile.cpp", 42, "asdf");
  fmt::print("d {}:{}:{}:{}\n", "somefile.cpp", 42, 1, "asdf");
  fmt::print("d {}:{}:{}:{}:{}\n", "somefile.cpp", 42, 1, 2, "asdf");
}

#elif defined(USE_COMPILED_FMT)

#include "fmt/compile.h"

void doFormat_a() {
  fmt::print(FMT_COMPILE("a {}\n"), "somefile.cpp");
  fmt::print(FMT_COMPILE("a {}:{}\n"), "somefile.cpp", 42);
  fmt::print(FMT_COMPILE("a {}:{}:{}\n"), "somefile.cpp", 42, "asdf");
  fmt::print(FMT_COMPILE("a {}:{}:{}:{}\n"), "somefile.cpp", 42, 1, "asdf");
  fmt::print(FMT_COMPILE("a {}:{}:{}:{}:{}\n"), "somefile.cpp", 42, 1, 2, "asdf");
  fmt::print(FMT_COMPILE("a {}:{}:{}:{}:{} {}:{}:{}:{}:{}\n"), "somefile.cpp", 42, 1, 2, "asdf", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_b() {
  fmt::print(FMT_COMPILE("b {}\n"), "somefile.cpp");
  fmt::print(FMT_COMPILE("b {}:{}\n"), "somefile.cpp", 42);
  fmt::print(FMT_COMPILE("b {}:{}:{}\n"), "somefile.cpp", 42, "asdf");
  fmt::print(FMT_COMPILE("b {}:{}:{}:{}\n"), "somefile.cpp", 42, 1, "asdf");
  fmt::print(FMT_COMPILE("b {}:{}:{}:{}:{}\n"), "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_c() {
  fmt::print(FMT_COMPILE("c {}\n"), "somefile.cpp");
  fmt::print(FMT_COMPILE("c {}:{}\n"), "somefile.cpp", 42);
  fmt::print(FMT_COMPILE("c {}:{}:{}\n"), "somefile.cpp", 42, "asdf");
  fmt::print(FMT_COMPILE("c {}:{}:{}:{}\n"), "somefile.cpp", 42, 1, "asdf");
  fmt::print(FMT_COMPILE("c {}:{}:{}:{}:{}\n"), "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_d() {
  fmt::print(FMT_COMPILE("d {}\n"), "somefile.cpp");
  fmt::print(FMT_COMPILE("d {}:{}\n"), "somefile.cpp", 42);
  fmt::print(FMT_COMPILE("d {}:{}:{}\n"), "somefile.cpp", 42, "asdf");
  fmt::print(FMT_COMPILE("d {}:{}:{}:{}\n"), "somefile.cpp", 42, 1, "asdf");
  fmt::print(FMT_COMPILE("d {}:{}:{}:{}:{}\n"), "somefile.cpp", 42, 1, 2, "asdf");
}

#elif defined(USE_IOSTREAMS)

#include <iostream>

void doFormat_a() {
  std::cout << "a somefile.cpp" << "\n";
  std::cout << "a somefile.cpp:" << 42 << "\n";
  std::cout << "a somefile.cpp:" << 42 << ":asdf" << "\n";
  std::cout << "a somefile.cpp:" << 42 << ':' << 1 << ":asdf" << "\n";
  std::cout << "a somefile.cpp:" << 42 << ':' << 1 << ':' << 2 << ":asdf" << "\n";
  std::cout << "a somefile.cpp:" << 42 << ':' << 1 << ':' << 2 << ":asdf" << " somefile.cpp:" << 42 << ':' << 1 << ':' << 2 << ":asdf" << "\n";
}

void doFormat_b() {
  std::cout << "b somefile.cpp" << "\n";
  std::cout << "b somefile.cpp:" << 42 << "\n";
  std::cout << "b somefile.cpp:" << 42 << ":asdf" << "\n";
  std::cout << "b somefile.cpp:" << 42 << ':' << 1 << ":asdf" << "\n";
  std::cout << "b somefile.cpp:" << 42 << ':' << 1 << ':' << 2 << ":asdf" << "\n";
}

void doFormat_c() {
  std::cout << "c somefile.cpp" << "\n";
  std::cout << "c somefile.cpp:" << 42 << "\n";
  std::cout << "c somefile.cpp:" << 42 << ":asdf" << "\n";
  std::cout << "c somefile.cpp:" << 42 << ':' << 1 << ":asdf" << "\n";
  std::cout << "c somefile.cpp:" << 42 << ':' << 1 << ':' << 2 << ":asdf" << "\n";
}

void doFormat_d() {
  std::cout << "d somefile.cpp" << "\n";
  std::cout << "d somefile.cpp:" << 42 << "\n";
  std::cout << "d somefile.cpp:" << 42 << ":asdf" << "\n";
  std::cout << "d somefile.cpp:" << 42 << ':' << 1 << ":asdf" << "\n";
  std::cout << "d somefile.cpp:" << 42 << ':' << 1 << ':' << 2 << ":asdf" << "\n";
}

#elif defined(USE_STB_SPRINTF)

#ifdef FIRST_FILE
#  define STB_SPRINTF_IMPLEMENTATION
#endif
// No floating point is formatted, so leave out the float support.
#define STB_SPRINTF_NOFLOAT

#include "stb_sprintf.h"
#include <stdio.h>

void doFormat_a() {
  char buf[200];
  stbsp_sprintf(buf, "a %s\n", "somefile.cpp");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "a %s:%d\n", "somefile.cpp", 42);
  fputs(buf, stdout);
  stbsp_sprintf(buf, "a %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "a %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "a %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "a %s:%d:%d:%d:%s %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf", "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

void doFormat_b() {
  char buf[100];
  stbsp_sprintf(buf, "b %s\n", "somefile.cpp");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "b %s:%d\n", "somefile.cpp", 42);
  fputs(buf, stdout);
  stbsp_sprintf(buf, "b %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "b %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "b %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

void doFormat_c() {
  char buf[100];
  stbsp_sprintf(buf, "c %s\n", "somefile.cpp");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "c %s:%d\n", "somefile.cpp", 42);
  fputs(buf, stdout);
  stbsp_sprintf(buf, "c %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "c %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "c %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

void doFormat_d() {
  char buf[100];
  stbsp_sprintf(buf, "d %s\n", "somefile.cpp");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "d %s:%d\n", "somefile.cpp", 42);
  fputs(buf, stdout);
  stbsp_sprintf(buf, "d %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "d %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  stbsp_sprintf(buf, "d %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

#elif defined(USE_PFORMAT)

#include <pformat/pformat.h>
#include <stdio.h>

void doFormat_a() {
  using namespace pformat;
  char buf[100];
  constexpr auto cf1 = "a {}\n"_log;
  cf1.format_to(buf, "somefile.cpp");
  fputs(buf, stdout);
  constexpr auto cf2 = "a {}:{}\n"_log;
  cf2.format_to(buf, "somefile.cpp", 42);
  fputs(buf, stdout);
  constexpr auto cf3 = "a {}:{}:{}\n"_log;
  cf3.format_to(buf, "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  constexpr auto cf4 = "a {}:{}:{}:{}\n"_log;
  cf4.format_to(buf, "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  constexpr auto cf5 = "a {}:{}:{}:{}:{}\n"_log;
  cf5.format_to(buf, "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
  constexpr auto cf6 = "a {}:{}:{}:{}:{} {}:{}:{}:{}:{}\n"_log;
  cf6.format_to(buf, "somefile.cpp", 42, 1, 2, "asdf", "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

void doFormat_b() {
  using namespace pformat;
  char buf[100];
  constexpr auto cf1 = "b {}\n"_log;
  cf1.format_to(buf, "somefile.cpp");
  fputs(buf, stdout);
  constexpr auto cf2 = "b {}:{}\n"_log;
  cf2.format_to(buf, "somefile.cpp", 42);
  fputs(buf, stdout);
  constexpr auto cf3 = "b {}:{}:{}\n"_log;
  cf3.format_to(buf, "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  constexpr auto cf4 = "b {}:{}:{}:{}\n"_log;
  cf4.format_to(buf, "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  constexpr auto cf5 = "b {}:{}:{}:{}:{}\n"_log;
  cf5.format_to(buf, "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

void doFormat_c() {
  using namespace pformat;
  char buf[100];
  constexpr auto cf1 = "c {}\n"_log;
  cf1.format_to(buf, "somefile.cpp");
  fputs(buf, stdout);
  constexpr auto cf2 = "c {}:{}\n"_log;
  cf2.format_to(buf, "somefile.cpp", 42);
  fputs(buf, stdout);
  constexpr auto cf3 = "c {}:{}:{}\n"_log;
  cf3.format_to(buf, "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  constexpr auto cf4 = "c {}:{}:{}:{}\n"_log;
  cf4.format_to(buf, "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  constexpr auto cf5 = "c {}:{}:{}:{}:{}\n"_log;
  cf5.format_to(buf, "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

void doFormat_d() {
  using namespace pformat;
  char buf[100];
  constexpr auto cf1 = "d {}\n"_log;
  cf1.format_to(buf, "somefile.cpp");
  fputs(buf, stdout);
  constexpr auto cf2 = "d {}:{}\n"_log;
  cf2.format_to(buf, "somefile.cpp", 42);
  fputs(buf, stdout);
  constexpr auto cf3 = "d {}:{}:{}\n"_log;
  cf3.format_to(buf, "somefile.cpp", 42, "asdf");
  fputs(buf, stdout);
  constexpr auto cf4 = "d {}:{}:{}:{}\n"_log;
  cf4.format_to(buf, "somefile.cpp", 42, 1, "asdf");
  fputs(buf, stdout);
  constexpr auto cf5 = "d {}:{}:{}:{}:{}\n"_log;
  cf5.format_to(buf, "somefile.cpp", 42, 1, 2, "asdf");
  fputs(buf, stdout);
}

#else
# ifdef USE_TINYFORMAT
#   include "tinyformat.h"
#   define PRINTF tfm::printf
# else
#  ifdef USE_STRING
#   include <string>
#  endif
#   include <stdio.h>
#   define PRINTF ::printf
# endif

void doFormat_a() {
  PRINTF("a %s\n", "somefile.cpp");
  PRINTF("a %s:%d\n", "somefile.cpp", 42);
  PRINTF("a %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  PRINTF("a %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  PRINTF("a %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
  PRINTF("a %s:%d:%d:%d:%s %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_b() {
  PRINTF("b %s\n", "somefile.cpp");
  PRINTF("b %s:%d\n", "somefile.cpp", 42);
  PRINTF("b %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  PRINTF("b %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  PRINTF("b %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_c() {
  PRINTF("c %s\n", "somefile.cpp");
  PRINTF("c %s:%d\n", "somefile.cpp", 42);
  PRINTF("c %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  PRINTF("c %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  PRINTF("c %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
}

void doFormat_d() {
  PRINTF("d %s\n", "somefile.cpp");
  PRINTF("d %s:%d\n", "somefile.cpp", 42);
  PRINTF("d %s:%d:%s\n", "somefile.cpp", 42, "asdf");
  PRINTF("d %s:%d:%d:%s\n", "somefile.cpp", 42, 1, "asdf");
  PRINTF("d %s:%d:%d:%d:%s\n", "somefile.cpp", 42, 1, 2, "asdf");
}

#endif
`
